package usecase

import (
	"sort"
	"strconv"
	"time"

	"travelledger-service/internal/domain/entity"
	"travelledger-service/internal/domain/registry"
)

// DefaultFeedSize is how many rows RecentFeed returns when the caller does
// not ask for a specific count.
const DefaultFeedSize = 10

const exportDateLayout = "2006-01-02"

// FeedRow is one entry of the cross-category recent activity feed.
type FeedRow struct {
	Category       entity.CategoryTag `json:"category"`
	Label          string             `json:"label"`
	Date           time.Time          `json:"date"`
	CustomerAmount entity.Amount      `json:"customerAmount"`
	SupplierAmount entity.Amount      `json:"supplierAmount"`
	Profit         int64              `json:"profit"`
}

// RecentFeed merges every category into one list sorted by creation time,
// newest first, and returns the first n rows (DefaultFeedSize when n <= 0).
// The sort is stable, so repeated calls on the same snapshot produce the
// same order. Each row's category comes from the snapshot slot the record
// was fetched into, never from the record's shape.
func RecentFeed(snap *entity.Snapshot, n int) []FeedRow {
	if n <= 0 {
		n = DefaultFeedSize
	}

	tagged := snap.Tagged()
	sort.SliceStable(tagged, func(i, j int) bool {
		return tagged[i].Record.Created().After(tagged[j].Record.Created())
	})
	if len(tagged) > n {
		tagged = tagged[:n]
	}

	rows := make([]FeedRow, 0, len(tagged))
	for _, tr := range tagged {
		rows = append(rows, FeedRow{
			Category:       tr.Tag,
			Label:          registry.LabelOf(tr.Tag),
			Date:           tr.Record.EventDate(),
			CustomerAmount: tr.Record.Revenue(),
			SupplierAmount: tr.Record.Cost(),
			Profit:         tr.Record.Profit(),
		})
	}
	return rows
}

// ExportHeaders is the fixed superset schema of the flattened export. The
// shared Date column carries the flight, rental, or train date; every other
// column belongs to exactly one category and stays blank elsewhere.
var ExportHeaders = []string{
	"Service Type",
	"From",
	"To",
	"Date",
	"Sector",
	"Hotel Name",
	"Check-in Date",
	"Check-out Date",
	"Destination",
	"Seaters",
	"Country",
	"Application Date",
	"Currency",
	"Rate",
	"Start Date",
	"End Date",
	"Flight Amount",
	"Car Amount",
	"Tour Manager Amount",
	"Amount",
	"Payment Date",
	"Total Cost",
	"Customer Amount",
	"Supplier Amount",
	"Profit",
}

// ExportTable is the flattened one-row-per-record projection of a snapshot,
// ready for tabular serialization. Row cells align with Headers; fields a
// category does not have are empty strings.
type ExportTable struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex returns the position of a header, or -1 when absent.
func (t *ExportTable) ColumnIndex(header string) int {
	for i, h := range t.Headers {
		if h == header {
			return i
		}
	}
	return -1
}

// ExportAll flattens every record in the snapshot into one table. Rows follow
// category order, then the store's native per-category order; no additional
// sorting. The output is deterministic for a given snapshot, and an empty
// snapshot yields a zero-row table.
func ExportAll(snap *entity.Snapshot) *ExportTable {
	table := &ExportTable{
		Headers: ExportHeaders,
		Rows:    make([][]string, 0, snap.TotalCount()),
	}

	for i := range snap.Flights {
		f := &snap.Flights[i]
		table.append(f, map[string]string{
			"From":                f.FromLocation,
			"To":                  f.ToLocation,
			"Date":                exportDate(f.FlightDate),
			"Sector":              f.Sector,
			"Tour Manager Amount": exportAmount(f.TourManagerAmount),
			"Car Amount":          exportAmount(f.CarAmount),
		})
	}
	for i := range snap.Hotels {
		h := &snap.Hotels[i]
		table.append(h, map[string]string{
			"Hotel Name":     h.HotelName,
			"Check-in Date":  exportDate(h.CheckInDate),
			"Check-out Date": exportDate(h.CheckOutDate),
		})
	}
	for i := range snap.Cars {
		c := &snap.Cars[i]
		table.append(c, map[string]string{
			"Destination": c.Destination,
			"Date":        exportDate(c.RentalDate),
			"Seaters":     strconv.Itoa(c.Seaters),
		})
	}
	for i := range snap.Visas {
		v := &snap.Visas[i]
		table.append(v, map[string]string{
			"Country":          v.Country,
			"Application Date": exportDate(v.ApplicationDate),
		})
	}
	for i := range snap.ForeignExchanges {
		fx := &snap.ForeignExchanges[i]
		table.append(fx, map[string]string{
			"Currency": fx.Currency,
			"Rate":     strconv.FormatFloat(fx.Rate, 'f', -1, 64),
		})
	}
	for i := range snap.TourPackages {
		tp := &snap.TourPackages[i]
		table.append(tp, map[string]string{
			"Destination":         tp.Destination,
			"Start Date":          exportDate(tp.StartDate),
			"End Date":            exportDate(tp.EndDate),
			"Flight Amount":       exportAmount(tp.FlightAmount),
			"Car Amount":          exportAmount(tp.CarAmount),
			"Tour Manager Amount": exportAmount(tp.TourManagerAmount),
			"Total Cost":          exportAmount(tp.TotalCost),
		})
	}
	for i := range snap.Trains {
		tr := &snap.Trains[i]
		table.append(tr, map[string]string{
			"From": tr.FromLocation,
			"To":   tr.ToLocation,
			"Date": exportDate(tr.TrainDate),
		})
	}
	for i := range snap.Vajabhats {
		vj := &snap.Vajabhats[i]
		table.append(vj, map[string]string{
			"Amount":       exportAmount(vj.Amount),
			"Payment Date": exportDate(vj.PaymentDate),
		})
	}

	return table
}

func (t *ExportTable) append(rec entity.ServiceRecord, cells map[string]string) {
	cells["Service Type"] = registry.LabelOf(rec.Category())
	cells["Customer Amount"] = exportAmount(rec.Revenue())
	cells["Supplier Amount"] = exportAmount(rec.Cost())
	cells["Profit"] = strconv.FormatInt(rec.Profit(), 10)

	row := make([]string, len(t.Headers))
	for i, header := range t.Headers {
		row[i] = cells[header]
	}
	t.Rows = append(t.Rows, row)
}

func exportDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(exportDateLayout)
}

func exportAmount(a entity.Amount) string {
	if !a.Valid {
		return ""
	}
	return strconv.FormatInt(a.Value, 10)
}
