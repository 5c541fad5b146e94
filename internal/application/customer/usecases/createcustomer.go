package usecases

import (
	"context"

	"norte/internal/domain/customer"
	"norte/internal/shared/errors"
	"norte/internal/shared/logger"
)

type ContactInput struct {
	Name     string
	Position string
	Email    string
	Phone    string
	Branches string
}

type CreateCustomerCommand struct {
	Name             string
	BusinessName     string
	RFC              string
	PaymentCondition string
	PaymentMethod    string
	InvoiceUsage     string
	Currency         string
	Contacts         []ContactInput
}

// CreateCustomerUseCase creates a customer with its initial contacts in one
// transaction.
type CreateCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	contactRepo  customer.ContactRepository
	txMgr        TransactionManager
	logger       logger.Interface
}

func NewCreateCustomerUseCase(
	customerRepo customer.CustomerRepository,
	contactRepo customer.ContactRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo: customerRepo,
		contactRepo:  contactRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*CustomerDTO, error) {
	uc.logger.Infow("executing create customer use case", "name", cmd.Name)

	newCustomer, err := customer.NewCustomer(
		cmd.Name,
		cmd.BusinessName,
		cmd.RFC,
		cmd.PaymentCondition,
		cmd.PaymentMethod,
		cmd.InvoiceUsage,
		cmd.Currency,
	)
	if err != nil {
		uc.logger.Errorw("invalid create customer command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	contacts := make([]*customer.Contact, 0, len(cmd.Contacts))
	for _, in := range cmd.Contacts {
		contact, err := customer.NewContact(0, in.Name, in.Position, in.Email, in.Phone, in.Branches)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		contacts = append(contacts, contact)
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.customerRepo.Save(txCtx, newCustomer); err != nil {
			return err
		}
		for _, contact := range contacts {
			contact.SetCustomerID(newCustomer.ID())
			if err := uc.contactRepo.Save(txCtx, contact); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("customer already exists")
		}
		uc.logger.Errorw("failed to save customer", "error", err)
		return nil, err
	}

	newCustomer.SetContacts(contacts)

	uc.logger.Infow("customer created successfully", "customer_id", newCustomer.ID())
	return customerToDTO(newCustomer), nil
}
