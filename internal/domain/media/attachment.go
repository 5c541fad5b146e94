// Package media holds the attachment records backing file uploads across
// budgets, payments, tickets and tasks.
package media

import (
	"fmt"
	"time"
)

// Owner types an attachment can hang off.
const (
	OwnerBudget  = "budget"
	OwnerPayment = "budget_payment"
	OwnerTicket  = "ticket"
	OwnerTask    = "ticket_task"
)

// Collections group attachments within an owner.
const (
	CollectionFiles    = "files"
	CollectionProof    = "proof"
	CollectionEvidence = "evidence"
)

var validOwnerTypes = map[string]bool{
	OwnerBudget:  true,
	OwnerPayment: true,
	OwnerTicket:  true,
	OwnerTask:    true,
}

var validCollections = map[string]bool{
	CollectionFiles:    true,
	CollectionProof:    true,
	CollectionEvidence: true,
}

type Attachment struct {
	id           uint
	ownerType    string
	ownerID      uint
	collection   string
	path         string
	originalName string
	size         int64
	mimeType     string
	createdAt    time.Time
}

func NewAttachment(ownerType string, ownerID uint, collection, path, originalName, mimeType string, size int64) (*Attachment, error) {
	if !validOwnerTypes[ownerType] {
		return nil, fmt.Errorf("invalid attachment owner type: %s", ownerType)
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("attachment owner ID is required")
	}
	if !validCollections[collection] {
		return nil, fmt.Errorf("invalid attachment collection: %s", collection)
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("attachment path is required")
	}
	if len(originalName) == 0 {
		return nil, fmt.Errorf("attachment original name is required")
	}
	if size <= 0 {
		return nil, fmt.Errorf("attachment size must be positive")
	}

	return &Attachment{
		ownerType:    ownerType,
		ownerID:      ownerID,
		collection:   collection,
		path:         path,
		originalName: originalName,
		size:         size,
		mimeType:     mimeType,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ownerType string,
	ownerID uint,
	collection, path, originalName, mimeType string,
	size int64,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	return &Attachment{
		id:           id,
		ownerType:    ownerType,
		ownerID:      ownerID,
		collection:   collection,
		path:         path,
		originalName: originalName,
		size:         size,
		mimeType:     mimeType,
		createdAt:    createdAt,
	}, nil
}

func (a *Attachment) ID() uint             { return a.id }
func (a *Attachment) OwnerType() string    { return a.ownerType }
func (a *Attachment) OwnerID() uint        { return a.ownerID }
func (a *Attachment) Collection() string   { return a.collection }
func (a *Attachment) Path() string         { return a.path }
func (a *Attachment) OriginalName() string { return a.originalName }
func (a *Attachment) Size() int64          { return a.size }
func (a *Attachment) MimeType() string     { return a.mimeType }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

// ValidOwnerType reports whether s names a known owner type.
func ValidOwnerType(s string) bool { return validOwnerTypes[s] }

// ValidCollection reports whether s names a known collection.
func ValidCollection(s string) bool { return validCollections[s] }
