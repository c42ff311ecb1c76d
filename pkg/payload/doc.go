// Package payload turns structured form input into the literal text a QR scanner
// interprets, and decides whether that input is complete and well formed.
//
// Each content type has its own informal wire format:
//
//	URL        https://example.com
//	WHATSAPP   https://wa.me/5511999999999
//	PHONE      tel:11988887777
//	EMAIL      mailto:ana@example.com
//	SMS        SMSTO:11988887777:Assunto: hi\n\nbody
//	WIFI       WIFI:T:WPA;S:Home;P:secret;;
//	LOCATION   geo:-23.5,-46.6
//	VCARD      BEGIN:VCARD ... END:VCARD (vCard 3.0)
//	MECARD     MECARD:N:Silva,Ana;TEL:...;EMAIL:...;;
//
// MP3, VIDEO, PDF and SOCIAL are aliases of URL. WIFI values are written as
// entered; VCARD and MECARD values are escaped unless WithLegacyEncoding is set.
//
// Input is modeled as a sealed union (Content) with one variant per type, built
// either directly or from a loosely typed field bag with FromFields. Validate and
// Encode are pure; Form holds the mutable state of an editing session.
//
// Usage:
//
//	c := payload.FromFields(payload.TypeWiFi, phone.Default, payload.Fields{
//		payload.FieldSSID:     "Home",
//		payload.FieldPassword: "secret",
//	})
//	if payload.Validate(c).Valid {
//		fmt.Println(payload.Encode(c)) // WIFI:T:WPA;S:Home;P:secret;;
//	}
package payload
