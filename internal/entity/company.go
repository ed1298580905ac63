package entity

// CompanyRecord is the subset of a registry company profile the service needs.
type CompanyRecord struct {
	Name     string   `json:"company_name"`
	Number   string   `json:"company_number"`
	SICCodes []string `json:"sic_codes"`
}
