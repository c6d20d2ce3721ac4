package propertyinfo

// PropertyResponse модель ответа property-information сервиса
type PropertyResponse struct {
	ListingInfo *ListingInfo `json:"listingInfo"`
}

// ListingInfo часть ответа с политикой посещений объекта
type ListingInfo struct {
	IsSelfServeVisitsAllowed *bool `json:"isSelfServeVisitsAllowed"`
}
