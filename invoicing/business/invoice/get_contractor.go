package invoice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"github.com/fieldworks/contractor-billing/invoicing/domain"
	"github.com/fieldworks/contractor-billing/invoicing/model"
	"github.com/fieldworks/contractor-billing/invoicing/store"
)

func (b *business) getContractor(ctx context.Context, id uuid.UUID) (*model.Contractor, error) {
	dbContractor, err := b.contractorRepo.GetContractor(ctx, store.UUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.ContractorNotFoundError{ContractorID: id}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load contractor"}
	}

	return convertDBContractorToModel(dbContractor), nil
}
