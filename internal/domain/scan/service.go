package scan

import "context"

// ScanService backs the public endpoints hit by scanned QR codes. No
// authentication: possession of a valid token is the credential.
type ScanService interface {
	Check(ctx context.Context, req CheckRequest) (CheckResponse, error)
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
}
