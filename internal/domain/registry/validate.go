package registry

import (
	"fmt"
	"strings"

	"travelledger-service/internal/domain/entity"
)

// ValidationError reports the required category fields a record is missing.
// The store never validates records; this check is the registry's contract.
type ValidationError struct {
	Tag    entity.CategoryTag
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s record missing required fields: %s", e.Tag, strings.Join(e.Fields, ", "))
}

// Validate checks that rec carries every field its category requires.
// Amounts are deliberately not validated; a missing amount degrades to zero
// in the aggregates instead of blocking the write.
func Validate(rec entity.ServiceRecord) error {
	var missing []string

	switch r := rec.(type) {
	case *entity.FlightBooking:
		missing = appendMissingString(missing, "fromLocation", r.FromLocation)
		missing = appendMissingString(missing, "toLocation", r.ToLocation)
		missing = appendMissingDate(missing, "flightDate", !r.FlightDate.IsZero())
	case *entity.HotelReservation:
		missing = appendMissingString(missing, "hotelName", r.HotelName)
		missing = appendMissingDate(missing, "checkInDate", !r.CheckInDate.IsZero())
	case *entity.CarRental:
		missing = appendMissingString(missing, "destination", r.Destination)
		missing = appendMissingDate(missing, "rentalDate", !r.RentalDate.IsZero())
	case *entity.VisaApplication:
		missing = appendMissingString(missing, "country", r.Country)
		missing = appendMissingDate(missing, "applicationDate", !r.ApplicationDate.IsZero())
	case *entity.ForeignExchange:
		missing = appendMissingString(missing, "currency", r.Currency)
	case *entity.TourPackage:
		missing = appendMissingString(missing, "destination", r.Destination)
		missing = appendMissingDate(missing, "startDate", !r.StartDate.IsZero())
		missing = appendMissingDate(missing, "endDate", !r.EndDate.IsZero())
	case *entity.TrainBooking:
		missing = appendMissingString(missing, "fromLocation", r.FromLocation)
		missing = appendMissingString(missing, "toLocation", r.ToLocation)
		missing = appendMissingDate(missing, "trainDate", !r.TrainDate.IsZero())
	case *entity.Vajabhat:
		if !r.Amount.Valid {
			missing = append(missing, "amount")
		}
		missing = appendMissingDate(missing, "paymentDate", !r.PaymentDate.IsZero())
	default:
		return fmt.Errorf("unsupported record type %T", rec)
	}

	if len(missing) > 0 {
		return &ValidationError{Tag: rec.Category(), Fields: missing}
	}
	return nil
}

func appendMissingString(missing []string, field, value string) []string {
	if strings.TrimSpace(value) == "" {
		return append(missing, field)
	}
	return missing
}

func appendMissingDate(missing []string, field string, present bool) []string {
	if !present {
		return append(missing, field)
	}
	return missing
}
