package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	reqdto "supplier-marketplace/internal/handler/dto/request"
	"supplier-marketplace/internal/infra"
	"supplier-marketplace/internal/pkg/clock"
	"supplier-marketplace/internal/pkg/errs"
	"supplier-marketplace/internal/usecase/queries"
	"supplier-marketplace/internal/usecase/shared"
)

var ErrMeasureIncomplete = errs.Mark(
	errs.New("Missing or invalid required fields: companyId, measureType, description, grantYear, grantAmount"),
	errs.ErrInvalidInput,
)

type OperatorCommands interface {
	ConfirmSupport(ctx context.Context, operatorID uuid.UUID, req reqdto.ConfirmSupportRequest) (*queries.GrantView, error)
}

type operatorCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
}

func NewOperatorCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock) OperatorCommands {
	return &operatorCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

// ConfirmSupport appends an audit row. Identical requests produce distinct rows.
func (o *operatorCommandsImpl) ConfirmSupport(ctx context.Context, operatorID uuid.UUID, req reqdto.ConfirmSupportRequest) (*queries.GrantView, error) {
	grant, err := req.ToDomain(operatorID, o.clock.Now())
	if err != nil {
		slog.DebugContext(ctx, "rejected support confirmation", "error", err.Error())
		return nil, ErrMeasureIncomplete
	}

	var created *queries.GrantView
	err = o.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		created, createErr = tx.Grants().Create(ctx, tx.DB(), grant)
		return createErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	o.publishConfirmed(ctx, created)
	return created, nil
}

func (o *operatorCommandsImpl) publishConfirmed(ctx context.Context, g *queries.GrantView) {
	event := shared.SupportConfirmed{
		GrantID:     g.ID,
		CompanyID:   g.CompanyID,
		MeasureType: g.MeasureType,
		Description: g.Description,
		GrantYear:   g.GrantYear,
		GrantAmount: g.GrantAmount,
		OperatorID:  g.ConfirmedBy,
		ConfirmedAt: g.ConfirmedAt,
	}
	if err := o.publisher.Publish(ctx, shared.EventSupportConfirmed, event); err != nil {
		slog.Warn("failed to publish support confirmation", "grant_id", g.ID, "error", err.Error())
	}
}
