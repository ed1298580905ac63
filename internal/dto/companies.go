package dto

import (
	"encoding/json"
	"errors"
)

// CompanyInformation is an enriched company profile.
type CompanyInformation struct {
	CompanyName     string   `json:"company_name"`
	CompanyNumber   string   `json:"company_number"`
	SICCodes        []string `json:"sic_codes"`
	SICDescriptions []string `json:"sic_descriptions"`
}

// CompanyInformationError reports a failed lookup inside a batch response.
type CompanyInformationError struct {
	CompanyNumber string `json:"company_number"`
	Error         string `json:"error"`
}

// CompanyResult holds exactly one of a successful lookup or a failed one.
type CompanyResult struct {
	Info *CompanyInformation
	Err  *CompanyInformationError
}

// Succeeded wraps a successful lookup.
func Succeeded(info CompanyInformation) CompanyResult {
	return CompanyResult{Info: &info}
}

// Failed wraps a failed lookup.
func Failed(companyNumber, message string) CompanyResult {
	return CompanyResult{Err: &CompanyInformationError{CompanyNumber: companyNumber, Error: message}}
}

// OK reports whether the result is a successful lookup.
func (r CompanyResult) OK() bool {
	return r.Info != nil
}

// MarshalJSON emits the flat object of whichever case is set; error entries
// are the ones carrying an "error" key.
func (r CompanyResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.Info != nil && r.Err == nil:
		return json.Marshal(r.Info)
	case r.Err != nil && r.Info == nil:
		return json.Marshal(r.Err)
	default:
		return nil, errors.New("company result must hold exactly one of info or error")
	}
}

// UnmarshalJSON decodes either case, using the "error" key as discriminator.
func (r *CompanyResult) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if _, isErr := probe["error"]; isErr {
		var entry CompanyInformationError
		if err := json.Unmarshal(data, &entry); err != nil {
			return err
		}
		*r = CompanyResult{Err: &entry}
		return nil
	}

	var info CompanyInformation
	if err := json.Unmarshal(data, &info); err != nil {
		return err
	}
	*r = CompanyResult{Info: &info}
	return nil
}

// CompaniesQuery carries the query parameters of the batch lookup endpoint.
type CompaniesQuery struct {
	CompanyIDs string `query:"company_ids" validate:"required,company_ids"`
}

// RootResponse is the body of the service root.
type RootResponse struct {
	Message string `json:"message"`
}
