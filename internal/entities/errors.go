package entities

import "errors"

// Ошибки уровня данных, общие для репозиториев и нескольких сервисов.
var (
	ErrUnsupportedUnit = errors.New("unsupported unit")

	ErrShipmentNotFound      = errors.New("shipment not found")
	ErrShipmentAlreadyExists = errors.New("shipment already exists")
	ErrShipmentTypeNotFound  = errors.New("shipment type not found")
	ErrRouteNotFound         = errors.New("route not found")
	ErrPartyNotFound         = errors.New("shipper or consignee not found")
	ErrRequestNotFound       = errors.New("shipment request not found")
	ErrLabelNotFound         = errors.New("shipment label not found")
	ErrStatusNotFound        = errors.New("shipment status not found")
	ErrCourierNotFound       = errors.New("courier not found")
)
