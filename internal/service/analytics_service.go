package service

import (
	"math"
	"sort"
	"strconv"

	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/internal/repository"
)

// trendMonths is how many calendar months the monthly trend covers.
const trendMonths = 6

// AnalyticsService derives the fleet KPIs, efficiency and cost views from
// current store state. Everything is recomputed per request; every ratio
// guards its denominator and reports a neutral zero instead of failing.
type AnalyticsService struct {
	repo *repository.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(repo *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Report assembles the full analytics payload.
func (s *AnalyticsService) Report() (*models.AnalyticsReport, error) {
	kpis, err := s.repo.KPIs()
	if err != nil {
		return nil, err
	}
	if kpis.TotalVehicles > 0 {
		kpis.UtilizationRate = int(math.Round(
			float64(kpis.ActiveFleet+kpis.InShop) / float64(kpis.TotalVehicles) * 100))
	}

	vehicleTypes, err := s.repo.VehicleTypeCounts()
	if err != nil {
		return nil, err
	}

	fuelEfficiency, err := s.fuelEfficiency()
	if err != nil {
		return nil, err
	}

	costBreakdown, err := s.costBreakdown()
	if err != nil {
		return nil, err
	}

	monthlyTrend, err := s.monthlyTrend()
	if err != nil {
		return nil, err
	}

	return &models.AnalyticsReport{
		KPIs:           *kpis,
		VehicleTypes:   vehicleTypes,
		FuelEfficiency: fuelEfficiency,
		CostBreakdown:  costBreakdown,
		MonthlyTrend:   monthlyTrend,
	}, nil
}

func (s *AnalyticsService) fuelEfficiency() ([]models.FuelEfficiencyRow, error) {
	rows, err := s.repo.FuelEfficiency()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].TotalLiters > 0 {
			rows[i].KmPerLiter = strconv.FormatFloat(rows[i].TotalKm/rows[i].TotalLiters, 'f', 2, 64)
		} else {
			rows[i].KmPerLiter = "0"
		}
	}
	return rows, nil
}

func (s *AnalyticsService) costBreakdown() ([]models.CostBreakdownRow, error) {
	rows, err := s.repo.CostBreakdown()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		r := &rows[i]
		r.TotalCost = r.FuelCost + r.MaintenanceCost + r.OtherCost
		if r.AcquisitionCost > 0 {
			roi := (r.TotalRevenue - (r.FuelCost + r.MaintenanceCost)) / r.AcquisitionCost * 100
			r.ROI = strconv.FormatFloat(roi, 'f', 1, 64)
		} else {
			r.ROI = "0"
		}
	}
	return rows, nil
}

// monthlyTrend merges expense, maintenance and revenue series into one row
// per calendar month. The queries come back newest-first; the result keeps
// the most recent months and is reversed into chronological order.
func (s *AnalyticsService) monthlyTrend() ([]models.MonthlyTrendRow, error) {
	expenses, err := s.repo.MonthlyExpenses(trendMonths)
	if err != nil {
		return nil, err
	}
	maintenance, err := s.repo.MonthlyMaintenance(trendMonths)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.MonthlyRevenue(trendMonths)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]*models.MonthlyTrendRow)
	row := func(month string) *models.MonthlyTrendRow {
		if r, ok := byMonth[month]; ok {
			return r
		}
		r := &models.MonthlyTrendRow{Month: month}
		byMonth[month] = r
		return r
	}

	for _, e := range expenses {
		r := row(e.Month)
		r.Fuel = e.Fuel
		r.Other = e.Other
	}
	for _, m := range maintenance {
		row(m.Month).Maintenance = m.Total
	}
	for _, v := range revenue {
		row(v.Month).Revenue = v.Total
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	if len(months) > trendMonths {
		months = months[:trendMonths]
	}

	trend := make([]models.MonthlyTrendRow, 0, len(months))
	for i := len(months) - 1; i >= 0; i-- {
		r := byMonth[months[i]]
		r.Total = r.Fuel + r.Other + r.Maintenance
		trend = append(trend, *r)
	}

	return trend, nil
}
