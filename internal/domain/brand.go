package domain

// BrandContactInfo holds the brand's public contact details.
type BrandContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

// Brand is the single brand profile served by the admin panel.
type Brand struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	LogoURL     string           `json:"logoUrl"`
	Bio         string           `json:"bio"`
	ContactInfo BrandContactInfo `json:"contactInfo"`
}

// BrandUpdateRequest is a partial update of the brand profile.
type BrandUpdateRequest struct {
	Name        *string           `json:"name,omitempty"`
	LogoURL     *string           `json:"logoUrl,omitempty"`
	Bio         *string           `json:"bio,omitempty"`
	ContactInfo *BrandContactInfo `json:"contactInfo,omitempty"`
}
