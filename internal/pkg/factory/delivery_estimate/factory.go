package delivery_estimate

import (
	"strings"
	"time"
)

type DeliveryEstimateFactory struct{}

func New() *DeliveryEstimateFactory {
	return &DeliveryEstimateFactory{}
}

// EstimateDelivery ориентировочная дата доставки по типу отправления.
// Курьер может вернуть свою оценку, эта используется, когда ее нет.
func (d *DeliveryEstimateFactory) EstimateDelivery(shipmentType string, baseTime time.Time) time.Time {
	resultTime := baseTime
	switch strings.ToUpper(strings.TrimSpace(shipmentType)) {
	case "SAME_DAY_DELIVERY":
		resultTime = resultTime.Add(time.Hour * 8)
	case "URGENT":
		resultTime = resultTime.AddDate(0, 0, 1)
	case "EXPRESS_WORLDWIDE", "EXPRESS_WORLDWIDE_IMPORT":
		resultTime = resultTime.AddDate(0, 0, 2)
	case "ECONOMY":
		resultTime = resultTime.AddDate(0, 0, 7)
	default:
		resultTime = resultTime.AddDate(0, 0, 3)
	}

	return resultTime
}
