package platform

import "net/http"

// AuthEngine stamps credentials onto outbound platform requests.
type AuthEngine interface {
	SetAuthHeader(request *http.Request)
}

// BearerAuth carries a caller-supplied access token. The token is never
// stored beyond the request it was issued for.
type BearerAuth struct {
	token string
}

func NewBearerAuth(token string) *BearerAuth {
	return &BearerAuth{token: token}
}

func (b *BearerAuth) SetAuthHeader(request *http.Request) {
	request.Header.Set("Authorization", "Bearer "+b.token)
}
