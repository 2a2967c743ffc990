package models

// FleetKPIs is the headline counter block of the analytics payload. Field
// names mirror what the dashboard charts bind to.
type FleetKPIs struct {
	TotalVehicles   int     `json:"totalVehicles"`
	ActiveFleet     int     `json:"activeFleet"`
	InShop          int     `json:"inShop"`
	Available       int     `json:"available"`
	PendingCargo    int     `json:"pendingCargo"`
	UtilizationRate int     `json:"utilizationRate"`
	TotalDrivers    int     `json:"totalDrivers"`
	DriversOnTrip   int     `json:"driversOnTrip"`
	CompletedTrips  int     `json:"completedTrips"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalExpenses   float64 `json:"totalExpenses"`
	TotalMaintCost  float64 `json:"totalMaintCost"`
}

// VehicleTypeCount is a per-type fleet size entry.
type VehicleTypeCount struct {
	Type  VehicleType `json:"type"`
	Count int         `json:"count"`
}

// FuelEfficiencyRow reports km per liter for one vehicle. Vehicles without
// any fuel expense are excluded from the view.
type FuelEfficiencyRow struct {
	VehicleID     int64   `json:"id"`
	Name          string  `json:"name"`
	LicensePlate  string  `json:"license_plate"`
	TotalLiters   float64 `json:"total_liters"`
	TotalFuelCost float64 `json:"total_fuel_cost"`
	TotalKm       float64 `json:"total_km"`
	KmPerLiter    string  `json:"km_per_liter"` // formatted, 2 decimals
}

// CostBreakdownRow reports the cost/revenue balance for one vehicle.
type CostBreakdownRow struct {
	VehicleID       int64   `json:"id"`
	Name            string  `json:"name"`
	LicensePlate    string  `json:"license_plate"`
	AcquisitionCost float64 `json:"acquisition_cost"`
	FuelCost        float64 `json:"fuel_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	OtherCost       float64 `json:"other_cost"`
	TotalCost       float64 `json:"total_cost"`
	TotalRevenue    float64 `json:"total_revenue"`
	ROI             string  `json:"roi"` // formatted, 1 decimal; "0" when acquisition cost is 0
}

// MonthlyTrendRow combines expenses, maintenance cost and completed-trip
// revenue for one calendar month.
type MonthlyTrendRow struct {
	Month       string  `json:"month"` // YYYY-MM
	Fuel        float64 `json:"fuel"`
	Other       float64 `json:"other"`
	Maintenance float64 `json:"maintenance"`
	Total       float64 `json:"total"` // fuel + other + maintenance
	Revenue     float64 `json:"revenue"`
}

// AnalyticsReport is the full payload of GET /api/analytics, recomputed from
// the store on every request.
type AnalyticsReport struct {
	KPIs           FleetKPIs           `json:"kpis"`
	VehicleTypes   []VehicleTypeCount  `json:"vehicleTypes"`
	FuelEfficiency []FuelEfficiencyRow `json:"fuelEfficiency"`
	CostBreakdown  []CostBreakdownRow  `json:"costBreakdown"`
	MonthlyTrend   []MonthlyTrendRow   `json:"monthlyTrend"`
}
