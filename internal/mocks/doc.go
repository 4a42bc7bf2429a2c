// Package mocks provides shared mock implementations for testing.
//
// Mocks use function fields for custom behavior and fall back to default
// response values, recording every call for later verification:
//
//	svc := &mocks.MockReadingService{
//	    CastReadingFn: func(ctx context.Context, req service.CastRequest) (*domain.Reading, error) {
//	        return nil, domain.ErrHexagramNotFound
//	    },
//	}
package mocks
