package booking

type CustomerInfo struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	EmergencyContact string `json:"emergency_contact" binding:"required"`
}

type ChildInfo struct {
	Name                string  `json:"name" binding:"required"`
	Age                 int     `json:"age" binding:"required,min=0,max=17"`
	SpecialNeeds        *string `json:"special_needs,omitempty"`
	Allergies           *string `json:"allergies,omitempty"`
	PickupAuthorization string  `json:"pickup_authorization" binding:"required"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

// ChildInfoPatch carries only the fields a caller wants changed. How the
// backend merges it into the stored record is up to the backend.
type ChildInfoPatch struct {
	Name                *string `json:"name,omitempty"`
	Age                 *int    `json:"age,omitempty"`
	SpecialNeeds        *string `json:"special_needs,omitempty"`
	Allergies           *string `json:"allergies,omitempty"`
	PickupAuthorization *string `json:"pickup_authorization,omitempty"`
	SpecialInstructions *string `json:"special_instructions,omitempty"`
}

func (p ChildInfoPatch) IsEmpty() bool {
	return p.Name == nil && p.Age == nil && p.SpecialNeeds == nil && p.Allergies == nil &&
		p.PickupAuthorization == nil && p.SpecialInstructions == nil
}

// DateTimeRange holds ISO-8601 start/end strings as selected in the flow.
type DateTimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
