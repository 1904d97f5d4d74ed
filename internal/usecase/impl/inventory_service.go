package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "cryofood/internal/delivery/context"
	"cryofood/internal/domain/entity"
	domainerrors "cryofood/internal/domain/errors"
	"cryofood/internal/domain/repository"
	"cryofood/internal/domain/service"
	"cryofood/internal/errors"
	"cryofood/internal/usecase"

	"go.uber.org/fx"
)

type inventoryService struct {
	authorizer usecase.Authorizer
	txManager  repository.TransactionManager
	itemRepo   repository.FoodItemRepository
	publisher  service.EventPublisher
	now        func() time.Time
	logger     *slog.Logger
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	Authorizer usecase.Authorizer
	TxManager  repository.TransactionManager
	ItemRepo   repository.FoodItemRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return newInventoryService(params, time.Now)
}

func newInventoryService(params InventoryServiceParams, now func() time.Time) *inventoryService {
	return &inventoryService{
		authorizer: params.Authorizer,
		txManager:  params.TxManager,
		itemRepo:   params.ItemRepo,
		publisher:  params.Publisher,
		now:        now,
		logger:     params.Logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *inventoryService) ListItems(ctx context.Context, cred usecase.Credential) ([]*entity.FoodItem, error) {
	if err := requireAuthorized(ctx, srv.authorizer, srv.logger, cred); err != nil {
		return nil, err
	}

	items, err := srv.itemRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list food items")
	}

	return items, nil
}

func (srv *inventoryService) AddItem(ctx context.Context, cred usecase.Credential, input usecase.AddItemInput) (*entity.FoodItem, error) {
	if err := requireAuthorized(ctx, srv.authorizer, srv.logger, cred); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("food name is required")
	}

	item := &entity.FoodItem{
		Name:      input.Name,
		Category:  input.Category,
		CreatedAt: srv.now().UTC(),
	}
	if err := srv.itemRepo.Create(ctx, item); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create food item")
	}

	srv.log(ctx).Info("Food item added", slog.Int64("item_id", item.ID), slog.String("by", cred.Identifier))
	srv.publish(ctx, service.InventoryEventAdded, item)

	return item, nil
}

// RemoveItem loads the item before deleting it so the change event can describe it.
func (srv *inventoryService) RemoveItem(ctx context.Context, cred usecase.Credential, id int64) error {
	if err := requireAuthorized(ctx, srv.authorizer, srv.logger, cred); err != nil {
		return err
	}

	var removed *entity.FoodItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewFoodItemRepository()

		item, err := itemRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := itemRepo.Delete(ctx, id); err != nil {
			return err
		}
		removed = item

		return nil
	})
	if errors.Is(err, repository.ErrFoodItemNotFound) {
		return domainerrors.ErrFoodItemNotFound.WrapMessage("no food item with that id")
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove food item")
	}

	srv.log(ctx).Info("Food item removed", slog.Int64("item_id", id), slog.String("by", cred.Identifier))
	srv.publish(ctx, service.InventoryEventRemoved, removed)

	return nil
}

// publish never fails the operation that already committed.
func (srv *inventoryService) publish(ctx context.Context, eventType string, item *entity.FoodItem) {
	event := &service.InventoryEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		ItemID:     item.ID,
		Name:       item.Name,
		Category:   item.Category,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishInventoryEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish inventory event",
			slog.String("type", eventType),
			slog.Int64("item_id", item.ID),
			slog.String("error", err.Error()),
		)
	}
}
