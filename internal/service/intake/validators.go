package intake

import (
	"net/mail"
	"strings"
	"time"

	"orchestrator/internal/entities"
)

const (
	pickupDateLayout   = "2006-01-02"
	maxReferenceLength = 255
)

func validate(req *entities.ShipmentRequestCreate) *ValidationError {
	fields := make(map[string]string)

	reference := strings.TrimSpace(req.ReferenceNumber)
	switch {
	case reference == "":
		fields["reference_number"] = "This field is required."
	case len(reference) > maxReferenceLength:
		fields["reference_number"] = "Ensure this field has no more than 255 characters."
	}

	if req.ShipmentTypeID <= 0 {
		fields["shipment_type_id"] = "This field is required."
	}

	if !req.Weight.Value.IsPositive() {
		fields["weight"] = "Weight must be greater than zero."
	}
	if _, err := entities.ParseWeightUnit(req.Weight.Unit.String()); err != nil {
		fields["weight_unit"] = "Unsupported weight unit."
	}

	if req.Dimensions != nil {
		if _, err := entities.ParseDimensionUnit(req.Dimensions.Unit.String()); err != nil {
			fields["dimension_unit"] = "Unsupported dimension unit."
		}
		if req.Dimensions.Height.IsNegative() || req.Dimensions.Width.IsNegative() || req.Dimensions.Length.IsNegative() {
			fields["dimensions"] = "Dimensions must not be negative."
		}
	}

	if req.PickupDate != "" {
		if _, err := time.Parse(pickupDateLayout, req.PickupDate); err != nil {
			fields["pickup_date"] = "Date has wrong format. Use YYYY-MM-DD."
		}
	}

	validateParty(fields, "shipper", req.ShipperID, req.Shipper)
	validateParty(fields, "consignee", req.ConsigneeID, req.Consignee)

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// validateParty сторона задается либо id, либо данными с email.
func validateParty(fields map[string]string, kind string, id *int64, party *entities.Party) {
	if id != nil && *id > 0 {
		return
	}

	if party == nil {
		fields[kind] = "Either '" + kind + "_id' or '" + kind + "' information must be provided."
		return
	}

	if strings.TrimSpace(party.Name) == "" {
		fields[kind+".name"] = "This field is required."
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(party.Email)); err != nil {
		fields[kind+".email"] = "Enter a valid email address."
	}
}
