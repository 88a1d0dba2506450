// Package qrcode renders RUTs and other short strings as PNG QR codes using
// github.com/skip2/go-qrcode.
//
//	png, err := qrcode.ForRUT(r, rut.Dots, 256)
//	uri, err := qrcode.GenerateBase64Image(r.Format(rut.Dash), 0)
package qrcode
