package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orchestrator/internal/entities"
	"orchestrator/internal/gateway/courier"
	"orchestrator/internal/pkg/lock"
	"orchestrator/pkg/logger"
)

type Option func(*Lifecycle)

func WithClock(now func() time.Time) Option {
	return func(l *Lifecycle) {
		l.now = now
	}
}

type Lifecycle struct {
	log       serviceLogger
	requests  RequestRepository
	parties   PartyRepository
	reference ReferenceRepository
	selector  CourierSelector
	couriers  CourierGateway
	creator   ShipmentCreator
	locker    Locker
	txManager TxManager
	now       func() time.Time
}

func New(
	log serviceLogger,
	requests RequestRepository,
	parties PartyRepository,
	reference ReferenceRepository,
	selector CourierSelector,
	couriers CourierGateway,
	creator ShipmentCreator,
	locker Locker,
	txManager TxManager,
	opts ...Option,
) *Lifecycle {
	l := &Lifecycle{
		log:       log.With(logger.NewField("service", "lifecycle")),
		requests:  requests,
		parties:   parties,
		reference: reference,
		selector:  selector,
		couriers:  couriers,
		creator:   creator,
		locker:    locker,
		txManager: txManager,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ProcessRequests один прогон батча. Параллельные прогоны исключаются блокировкой,
// ошибка отдельной заявки никогда не прерывает батч.
func (l *Lifecycle) ProcessRequests(ctx context.Context, batchSize int) (*entities.BatchSummary, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("invalid batch size %d", batchSize)
	}

	token, err := l.locker.TryLock(ctx)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, ErrBatchInProgress
		}
		return nil, fmt.Errorf("acquire batch lock: %w", err)
	}
	defer func() {
		// контекст батча мог истечь, снимаем блокировку независимо от него
		unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := l.locker.Unlock(unlockCtx, token); err != nil {
			l.log.With(logger.NewField("error", err)).Warn("release batch lock")
		}
	}()

	started := time.Now()
	defer func() {
		BatchRunDuration.Observe(time.Since(started).Seconds())
	}()

	requests, err := l.requests.ListToProcess(ctx, batchSize)
	if err != nil {
		return nil, fmt.Errorf("list requests to process: %w", err)
	}

	summary := &entities.BatchSummary{Details: make([]entities.BatchDetail, 0, len(requests))}
	for _, request := range requests {
		if ctx.Err() != nil {
			break
		}

		claimed, err := l.requests.Claim(ctx, request.ID, l.now().UTC())
		if err != nil {
			if !errors.Is(err, entities.ErrRequestNotFound) {
				l.log.With(
					logger.NewField("request_id", request.ID),
					logger.NewField("error", err),
				).Error("claim shipment request")
			}
			// заявку уже забрал другой воркер или она вышла из выборки
			continue
		}

		detail := l.processOne(ctx, claimed)
		summary.Add(detail)

		if detail.Success {
			BatchRequestsTotal.WithLabelValues("completed").Inc()
		} else {
			BatchRequestsTotal.WithLabelValues("failed").Inc()
		}
	}

	l.log.With(
		logger.NewField("total", summary.Total),
		logger.NewField("successful", summary.Successful),
		logger.NewField("failed", summary.Failed),
	).Info("shipment request batch finished")

	return summary, nil
}

func (l *Lifecycle) processOne(ctx context.Context, request *entities.ShipmentRequest) (detail entities.BatchDetail) {
	detail = entities.BatchDetail{
		RequestID:       request.ID,
		ReferenceNumber: request.ReferenceNumber,
	}
	log := l.log.With(
		logger.NewField("request_id", request.ID),
		logger.NewField("reference_number", request.ReferenceNumber),
		logger.NewField("attempt", request.Retries),
	)

	defer func() {
		if r := recover(); r != nil {
			detail.Success = false
			detail.Error = fmt.Sprintf("unexpected error: %v", r)
			log.With(logger.NewField("panic", r)).Error("shipment request processing panicked")
			l.markFailed(ctx, log, request.ID, detail.Error)
		}
	}()

	var selectedCourier string
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		name, err := l.submit(ctx, request)
		selectedCourier = name
		return err
	})
	detail.Courier = selectedCourier

	if err == nil {
		detail.Success = true
		log.With(logger.NewField("courier", selectedCourier)).Info("shipment request completed")
		return detail
	}

	if errors.Is(err, entities.ErrShipmentAlreadyExists) {
		// отправление по этому номеру уже есть, повторять заявку бессмысленно
		detail.Error = reasonAlreadyExists
		if markErr := l.requests.MarkCompleted(ctx, request.ID); markErr != nil {
			log.With(logger.NewField("error", markErr)).Error("mark duplicate shipment request completed")
		}
		log.Warn("shipment already exists for request")
		return detail
	}

	detail.Error = failureReason(err)
	log.With(
		logger.NewField("courier", selectedCourier),
		logger.NewField("error", err),
	).Warn("shipment request failed")
	l.markFailed(ctx, log, request.ID, detail.Error)

	return detail
}

// submit выполняется внутри транзакции заявки. Возвращает имя выбранного курьера, если до выбора дошли.
func (l *Lifecycle) submit(ctx context.Context, request *entities.ShipmentRequest) (string, error) {
	body := request.Body

	shipper, err := l.parties.GetByID(ctx, entities.Shipper, body.ShipperID)
	if err != nil {
		return "", partyError(err)
	}
	consignee, err := l.parties.GetByID(ctx, entities.Consignee, body.ConsigneeID)
	if err != nil {
		return "", partyError(err)
	}

	shipmentType, err := l.reference.GetShipmentType(ctx, body.ShipmentTypeID)
	if err != nil {
		return "", fmt.Errorf("get shipment type: %w", err)
	}

	route, err := l.resolveRoute(ctx, body, shipper, consignee)
	if err != nil {
		return "", fmt.Errorf("resolve route: %w", err)
	}

	selected, err := l.selector.Find(ctx, shipmentType.ID, route.Origin, route.Destination)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoCourierAvailable, err)
	}

	canonical := &courier.ShipmentRequest{
		ReferenceNumber:     request.ReferenceNumber,
		ShipmentTypeID:      shipmentType.ID,
		ShipmentType:        shipmentType.Name,
		Shipper:             *shipper,
		Consignee:           *consignee,
		Route:               *route,
		Weight:              body.ToWeight(),
		Dimensions:          body.ToDimensions(),
		PickupDate:          body.PickupDate,
		SpecialInstructions: body.SpecialInstructions,
	}

	result, err := l.couriers.CreateShipment(ctx, selected.Name, canonical)
	if err != nil {
		return selected.Name, err
	}

	if _, err := l.creator.CreateShipment(ctx, canonical, result, *selected); err != nil {
		return selected.Name, err
	}

	if err := l.requests.MarkCompleted(ctx, request.ID); err != nil {
		return selected.Name, fmt.Errorf("mark request completed: %w", err)
	}

	return selected.Name, nil
}

// resolveRoute маршрут из заявки, иначе по городам сторон.
func (l *Lifecycle) resolveRoute(
	ctx context.Context,
	body entities.RequestBody,
	shipper, consignee *entities.Party,
) (*entities.Route, error) {
	if body.RouteID != nil {
		route, err := l.reference.GetRouteByID(ctx, *body.RouteID)
		if err == nil {
			return route, nil
		}
		l.log.With(
			logger.NewField("route_id", *body.RouteID),
			logger.NewField("error", err),
		).Warn("stored route not found, falling back to party cities")
	}

	origin := firstNonEmpty(body.ShipperCity, shipper.City)
	destination := firstNonEmpty(body.ConsigneeCity, consignee.City)

	return l.reference.GetOrCreateRoute(ctx, origin, destination)
}

func (l *Lifecycle) markFailed(ctx context.Context, log logger.Logger, id int64, reason string) {
	if err := l.requests.MarkFailed(context.WithoutCancel(ctx), id, reason); err != nil {
		log.With(logger.NewField("error", err)).Error("mark shipment request failed")
	}
}

func partyError(err error) error {
	if errors.Is(err, entities.ErrPartyNotFound) {
		return ErrPartiesNotFound
	}
	return fmt.Errorf("get party: %w", err)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrPartiesNotFound):
		return reasonPartiesNotFound
	case errors.Is(err, ErrNoCourierAvailable):
		return reasonNoCourier
	}

	if courierErr, ok := courier.AsError(err); ok && courierErr.Message != "" {
		return courierErr.Message
	}
	return err.Error()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
