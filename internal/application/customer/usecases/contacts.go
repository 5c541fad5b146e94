package usecases

import (
	"context"

	"norte/internal/domain/customer"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type CreateContactCommand struct {
	CustomerID uint
	Name       string
	Position   string
	Email      string
	Phone      string
	Branches   string
}

type CreateContactUseCase struct {
	customerRepo customer.CustomerRepository
	contactRepo  customer.ContactRepository
	logger       logger.Interface
}

func NewCreateContactUseCase(
	customerRepo customer.CustomerRepository,
	contactRepo customer.ContactRepository,
	logger logger.Interface,
) *CreateContactUseCase {
	return &CreateContactUseCase{
		customerRepo: customerRepo,
		contactRepo:  contactRepo,
		logger:       logger,
	}
}

func (uc *CreateContactUseCase) Execute(ctx context.Context, cmd CreateContactCommand) (*ContactDTO, error) {
	uc.logger.Infow("executing create contact use case", "customer_id", cmd.CustomerID, "name", cmd.Name)

	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	parent, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "customer_id", cmd.CustomerID, "error", err)
		return nil, err
	}
	if parent == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	contact, err := customer.NewContact(cmd.CustomerID, cmd.Name, cmd.Position, cmd.Email, cmd.Phone, cmd.Branches)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.contactRepo.Save(ctx, contact); err != nil {
		uc.logger.Errorw("failed to save contact", "customer_id", cmd.CustomerID, "error", err)
		return nil, err
	}

	uc.logger.Infow("contact created", "customer_id", cmd.CustomerID, "contact_id", contact.ID())

	dto := contactToDTO(contact)
	return &dto, nil
}

type UpdateContactCommand struct {
	ContactID uint
	Name      string
	Position  string
	Email     string
	Phone     string
	Branches  string
}

type UpdateContactUseCase struct {
	contactRepo customer.ContactRepository
	logger      logger.Interface
}

func NewUpdateContactUseCase(
	contactRepo customer.ContactRepository,
	logger logger.Interface,
) *UpdateContactUseCase {
	return &UpdateContactUseCase{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func (uc *UpdateContactUseCase) Execute(ctx context.Context, cmd UpdateContactCommand) (*ContactDTO, error) {
	uc.logger.Infow("executing update contact use case", "contact_id", cmd.ContactID)

	if cmd.ContactID == 0 {
		return nil, errors.NewValidationError("contact ID is required")
	}

	existing, err := uc.contactRepo.GetByID(ctx, cmd.ContactID)
	if err != nil {
		uc.logger.Errorw("failed to get contact", "contact_id", cmd.ContactID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("contact not found")
	}

	if err := existing.UpdateDetails(cmd.Name, cmd.Position, cmd.Email, cmd.Phone, cmd.Branches); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.contactRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update contact", "contact_id", cmd.ContactID, "error", err)
		return nil, err
	}

	uc.logger.Infow("contact updated", "contact_id", existing.ID())

	dto := contactToDTO(existing)
	return &dto, nil
}

type DeleteContactCommand struct {
	ContactID uint
}

type DeleteContactUseCase struct {
	contactRepo customer.ContactRepository
	logger      logger.Interface
}

func NewDeleteContactUseCase(
	contactRepo customer.ContactRepository,
	logger logger.Interface,
) *DeleteContactUseCase {
	return &DeleteContactUseCase{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func (uc *DeleteContactUseCase) Execute(ctx context.Context, cmd DeleteContactCommand) error {
	uc.logger.Infow("executing delete contact use case", "contact_id", cmd.ContactID)

	if cmd.ContactID == 0 {
		return errors.NewValidationError("contact ID is required")
	}

	existing, err := uc.contactRepo.GetByID(ctx, cmd.ContactID)
	if err != nil {
		uc.logger.Errorw("failed to get contact", "contact_id", cmd.ContactID, "error", err)
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("contact not found")
	}

	if err := uc.contactRepo.Delete(ctx, cmd.ContactID); err != nil {
		uc.logger.Errorw("failed to delete contact", "contact_id", cmd.ContactID, "error", err)
		return err
	}

	uc.logger.Infow("contact deleted", "contact_id", cmd.ContactID)
	return nil
}
