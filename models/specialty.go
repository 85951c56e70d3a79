// models/specialty.go
package models

import "strings"

// Specialty is a tag from the firm's closed practice-area set. Attorneys
// carry a set of these and every assignment records the one it was made
// under.
type Specialty string

const (
	SpecialtyGeneral              Specialty = "GENERAL"
	SpecialtyArbitration          Specialty = "ARBITRATION"
	SpecialtyInternational        Specialty = "INTERNATIONAL"
	SpecialtyDataPrivacy          Specialty = "DATA_PRIVACY"
	SpecialtyTechnology           Specialty = "TECHNOLOGY"
	SpecialtyRestructuring        Specialty = "RESTRUCTURING"
	SpecialtyBankruptcy           Specialty = "BANKRUPTCY"
	SpecialtyEnergy               Specialty = "ENERGY"
	SpecialtyEnvironmental        Specialty = "ENVIRONMENTAL"
	SpecialtyImmigration          Specialty = "IMMIGRATION"
	SpecialtyFamily               Specialty = "FAMILY"
	SpecialtyInsurance            Specialty = "INSURANCE"
	SpecialtyBanking              Specialty = "BANKING"
	SpecialtyTax                  Specialty = "TAX"
	SpecialtyEmployment           Specialty = "EMPLOYMENT"
	SpecialtyLabor                Specialty = "LABOR"
	SpecialtyIntellectualProperty Specialty = "INTELLECTUAL_PROPERTY"
	SpecialtyRealEstate           Specialty = "REAL_ESTATE"
	SpecialtyConstruction         Specialty = "CONSTRUCTION"
	SpecialtyContracts            Specialty = "CONTRACTS"
	SpecialtyCriminal             Specialty = "CRIMINAL"
	SpecialtyCommercialLitigation Specialty = "COMMERCIAL_LITIGATION"
	SpecialtyLitigation           Specialty = "LITIGATION"
	SpecialtySecurities           Specialty = "SECURITIES"
	SpecialtyMergersAcquisitions  Specialty = "MERGERS_ACQUISITIONS"
	SpecialtyCorporate            Specialty = "CORPORATE"
)

var validSpecialties = map[Specialty]bool{
	SpecialtyGeneral:              true,
	SpecialtyArbitration:          true,
	SpecialtyInternational:        true,
	SpecialtyDataPrivacy:          true,
	SpecialtyTechnology:           true,
	SpecialtyRestructuring:        true,
	SpecialtyBankruptcy:           true,
	SpecialtyEnergy:               true,
	SpecialtyEnvironmental:        true,
	SpecialtyImmigration:          true,
	SpecialtyFamily:               true,
	SpecialtyInsurance:            true,
	SpecialtyBanking:              true,
	SpecialtyTax:                  true,
	SpecialtyEmployment:           true,
	SpecialtyLabor:                true,
	SpecialtyIntellectualProperty: true,
	SpecialtyRealEstate:           true,
	SpecialtyConstruction:         true,
	SpecialtyContracts:            true,
	SpecialtyCriminal:             true,
	SpecialtyCommercialLitigation: true,
	SpecialtyLitigation:           true,
	SpecialtySecurities:           true,
	SpecialtyMergersAcquisitions:  true,
	SpecialtyCorporate:            true,
}

// NormalizeSpecialty maps free-text practice-area input onto the closed
// tag set. Unrecognized values degrade to GENERAL instead of failing the
// assignment; that coercion mirrors upstream data and is pending product
// confirmation before it can be hardened into a rejection.
func NormalizeSpecialty(raw string) Specialty {
	s := strings.TrimSpace(raw)
	if s == "" {
		return SpecialtyGeneral
	}
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "&", "AND")

	tag := Specialty(s)
	if validSpecialties[tag] {
		return tag
	}
	return SpecialtyGeneral
}

// IsKnownSpecialty reports whether raw maps onto a tag other than the
// GENERAL fallback (or is literally GENERAL).
func IsKnownSpecialty(raw string) bool {
	s := strings.TrimSpace(raw)
	if s == "" {
		return false
	}
	normalized := NormalizeSpecialty(s)
	if normalized == SpecialtyGeneral {
		return strings.EqualFold(strings.ReplaceAll(s, " ", "_"), string(SpecialtyGeneral))
	}
	return true
}

// NormalizeSpecialties normalizes and de-duplicates attorney specialty
// tags, preserving first-seen order.
func NormalizeSpecialties(raw []string) []Specialty {
	seen := make(map[Specialty]bool, len(raw))
	out := make([]Specialty, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		tag := NormalizeSpecialty(r)
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}
