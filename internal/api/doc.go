// Package api serves RUT parsing, formatting, validation and generation over
// HTTP, plus a small HTML demo page.
//
// Routes:
//
//	GET  /                                   demo page (?rut= checks an input)
//	GET  /healthz                            liveness
//	GET  /readyz                             readiness (pings Redis when configured)
//	GET  /api/ruts/random?min=&max=          random RUT
//	GET  /api/ruts/{rut}                     parse into every notation
//	GET  /api/ruts/{rut}/valid               {"valid": bool}; never an error
//	GET  /api/ruts/{rut}/format/{notation}   render as bare, dash or dots
//	GET  /api/ruts/{rut}/qr.png?size=        PNG QR code
//	POST /api/ruts/validate                  {"ruts": [...]} batch check
//
// JSON responses use the envelope {"data": ..., "error": {"code", "message",
// "details"}}. Parse failures are 400 with a code naming the reason,
// validation failures are 422 with per-field details, and an exhausted
// deduplicating generator is 409.
package api
