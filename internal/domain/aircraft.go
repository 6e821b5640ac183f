package domain

// Aircraft carries the average fuel figures used to estimate a flight's consumption.
type Aircraft struct {
	ID                  int64   `json:"id" yaml:"id"`
	Name                string  `json:"name" yaml:"name"`
	AvgConsumptionPerKm float64 `json:"avg_consumption_per_km" yaml:"avg_consumption_per_km"`
	AvgTakeoffEffort    float64 `json:"avg_takeoff_effort" yaml:"avg_takeoff_effort"`
}
