package courier

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"orchestrator/internal/entities"
)

type instance struct {
	adapter   ShipmentCourier
	updatedAt time.Time
}

// Registry явная зависимость (не глобальный синглтон): имя курьера -> конструктор адаптера.
// Конфигурация читается из БД при каждом resolve. Экземпляр адаптера переиспользуется,
// пока не изменился updated_at конфига, чтобы OAuth токен жил между вызовами.
type Registry struct {
	configs ConfigRepository

	mu        sync.RWMutex
	providers map[string]Provider
	instances map[string]instance
}

func NewRegistry(configs ConfigRepository) *Registry {
	return &Registry{
		configs:   configs,
		providers: make(map[string]Provider),
		instances: make(map[string]instance),
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register добавляет провайдера, имя регистронезависимо.
func (r *Registry) Register(name string, provider Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeName(name)
	r.providers[key] = provider
	delete(r.instances, key)
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Supports(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[normalizeName(name)]
	return ok
}

// Resolve возвращает адаптер с актуальной конфигурацией.
// Отсутствующий или неактивный конфиг - COURIER_NOT_FOUND, незарегистрированное имя - UNSUPPORTED_COURIER.
func (r *Registry) Resolve(ctx context.Context, name string) (ShipmentCourier, error) {
	key := normalizeName(name)

	r.mu.RLock()
	provider, ok := r.providers[key]
	r.mu.RUnlock()
	if !ok {
		return nil, NewError(name, CodeUnsupportedCourier, fmt.Sprintf("Unsupported courier: %s", name))
	}

	cfg, err := r.configs.GetActiveConfigByCourierName(ctx, key)
	if err != nil {
		if errors.Is(err, entities.ErrCourierNotFound) {
			return nil, NewError(name, CodeCourierNotFound, fmt.Sprintf("Courier configuration not found for %s", name)).WithCause(err)
		}
		return nil, NewError(name, CodeDatabaseError, "load courier configuration").WithCause(err)
	}
	if cfg == nil || !cfg.IsActive {
		return nil, NewError(name, CodeCourierNotFound, fmt.Sprintf("Courier configuration not found for %s", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.instances[key]; ok && cached.updatedAt.Equal(cfg.UpdatedAt) {
		return cached.adapter, nil
	}

	adapter, err := provider.Constructor(*cfg)
	if err != nil {
		return nil, NewError(name, CodeAPIError, "initialize courier adapter").WithCause(err)
	}
	r.instances[key] = instance{adapter: adapter, updatedAt: cfg.UpdatedAt}

	return adapter, nil
}

// MapWebhookStatus для незарегистрированного курьера всегда unknown.
func (r *Registry) MapWebhookStatus(name, raw string) entities.StatusType {
	r.mu.RLock()
	provider, ok := r.providers[normalizeName(name)]
	r.mu.RUnlock()

	if !ok || provider.WebhookStatus == nil {
		return entities.StatusUnknown
	}
	return provider.WebhookStatus(raw)
}

// CreateShipment неуспешный ответ адаптера (Success=false) тоже возвращается как *Error,
// чтобы вызывающему хватало одной проверки err.
func (r *Registry) CreateShipment(ctx context.Context, name string, req *ShipmentRequest) (res *ShipmentResult, err error) {
	adapter, err := r.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	defer recoverAdapterPanic(name, &err)

	res, err = adapter.CreateShipment(ctx, req)
	if err != nil {
		return nil, Normalize(name, err)
	}
	if res == nil || !res.Success {
		message := "courier rejected shipment"
		if res != nil && res.ErrorMessage != "" {
			message = res.ErrorMessage
		}
		return res, NewError(name, CodeCreationFailed, message)
	}
	return res, nil
}

func (r *Registry) FetchLabel(ctx context.Context, name, externalID string) (res *LabelResult, err error) {
	adapter, err := r.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	defer recoverAdapterPanic(name, &err)

	res, err = adapter.FetchLabel(ctx, externalID)
	if err != nil {
		return nil, Normalize(name, err)
	}
	if res == nil || res.URL == "" {
		return nil, NewError(name, CodeLabelURLNotFound, "Label URL not found in courier response")
	}
	return res, nil
}

func (r *Registry) TrackShipment(ctx context.Context, name, externalID string) (res *TrackingResult, err error) {
	adapter, err := r.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	defer recoverAdapterPanic(name, &err)

	res, err = adapter.TrackShipment(ctx, externalID)
	if err != nil {
		return nil, Normalize(name, err)
	}
	if res == nil {
		return nil, NewError(name, CodeTrackingDataNotFound, "No tracking data returned by courier")
	}
	return res, nil
}

func (r *Registry) CancelShipment(ctx context.Context, name, externalID string) (res *CancelResult, err error) {
	adapter, err := r.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	cancellable, ok := adapter.(CancellableCourier)
	if !ok {
		return nil, NewError(name, CodeCancellationNotSupported, fmt.Sprintf("Courier %s does not support cancellation", name))
	}

	defer recoverAdapterPanic(name, &err)

	res, err = cancellable.CancelShipment(ctx, externalID)
	if err != nil {
		return nil, Normalize(name, err)
	}
	if res == nil || !res.Success {
		message := "courier rejected cancellation"
		if res != nil && res.Message != "" {
			message = res.Message
		}
		return res, NewError(name, CodeCancellationFailed, message)
	}
	return res, nil
}

// recoverAdapterPanic паника внутри адаптера не должна уронить батч или HTTP обработчик.
func recoverAdapterPanic(name string, err *error) {
	if r := recover(); r != nil {
		*err = NewError(name, CodeAPIError, fmt.Sprintf("courier adapter panic: %v", r))
	}
}
