package flights

import "github.com/Domenick1991/flightsinfo/internal/domain"

type AddStatus int

const (
	AddSuccess AddStatus = iota
	AddAlreadyExists
	AddSameAirportsChosen
	AddDataError
	AddFailure
)

func (s AddStatus) String() string {
	switch s {
	case AddSuccess:
		return "success"
	case AddAlreadyExists:
		return "already_exists"
	case AddSameAirportsChosen:
		return "same_airports_chosen"
	case AddDataError:
		return "data_error"
	case AddFailure:
		return "failure"
	}
	return "unknown"
}

type EditStatus int

const (
	EditSuccess EditStatus = iota
	EditAlreadyExists
	EditSameAirportsChosen
	EditEntriesNotChanged
	EditDataError
	EditFailure
)

func (s EditStatus) String() string {
	switch s {
	case EditSuccess:
		return "success"
	case EditAlreadyExists:
		return "already_exists"
	case EditSameAirportsChosen:
		return "same_airports_chosen"
	case EditEntriesNotChanged:
		return "entries_not_changed"
	case EditDataError:
		return "data_error"
	case EditFailure:
		return "failure"
	}
	return "unknown"
}

type RemoveStatus int

const (
	RemoveSuccess RemoveStatus = iota
	RemoveFailure
)

func (s RemoveStatus) String() string {
	switch s {
	case RemoveSuccess:
		return "success"
	case RemoveFailure:
		return "failure"
	}
	return "unknown"
}

// Result is the terminal outcome of a write use case. Info carries the diagnostic
// for DataError and Failure; Flight is the written record on Add/Edit success.
type Result[S ~int] struct {
	Status S
	Info   string
	Flight *domain.Flight
}

type (
	AddResult    = Result[AddStatus]
	EditResult   = Result[EditStatus]
	RemoveResult = Result[RemoveStatus]
)

// Report is the full flight list with catalog totals.
type Report struct {
	Flights              []domain.FlightView `json:"flights"`
	FlightCount          int                 `json:"flight_count"`
	TotalDistance        float64             `json:"total_distance"`
	TotalFuelConsumption float64             `json:"total_fuel_consumption"`
}
