// Package binder decodes HTTP request bodies into typed values.
//
// JSON returns a bind function that enforces the application/json media type,
// caps the body size and rejects unknown fields and trailing data:
//
//	bind := binder.JSON(binder.WithMaxSize(64 << 10))
//
//	var req RenderRequest
//	if err := bind(r, &req); err != nil {
//		switch {
//		case errors.Is(err, binder.ErrBodyTooLarge):
//			// 413
//		case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
//			// 415
//		default:
//			// 400
//		}
//	}
//
// String values are kept exactly as sent: callers that validate input "as
// entered" must see the raw text.
package binder
