package endpoints

// Endpoints groups every endpoint the sandbox exposes.
type Endpoints struct {
	AirportEndpoint  AirportEndpoint
	TokenEndpoint    TokenEndpoint
	FavoriteEndpoint FavoriteEndpoint
}
