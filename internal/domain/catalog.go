package domain

// ResourceRequirement требование услуги к группе ресурсов (например, 2 "chair")
type ResourceRequirement struct {
	GroupID  string
	Quantity int
}

// Service represents a bookable service of a vendor
type Service struct {
	ID                   string
	VendorID             string
	Name                 string
	DurationMinutes      int
	ResourceRequirements []ResourceRequirement
}

// IsConfigured returns true if the service can be scheduled
func (s *Service) IsConfigured() bool {
	return s.DurationMinutes > 0
}

// IsSingleCapacity returns true if the service declares no resource requirements
func (s *Service) IsSingleCapacity() bool {
	return len(s.ResourceRequirements) == 0
}

// ResourceInstance единица ресурса вендора (конкретный мастер, кабинет и т.п.)
type ResourceInstance struct {
	ID       string
	VendorID string
	GroupID  string
}

// FleetItem единица автопарка, сдаваемая в аренду
type FleetItem struct {
	ID          string
	VendorID    string
	Model       string
	PricePerDay float64
}
