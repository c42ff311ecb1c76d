package payload

import (
	"github.com/dmitrymomot/qrkit/pkg/phone"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// Content is the typed input of one content type.
// The set of implementations is closed: URL, WhatsApp, Phone, Text, Email,
// SMS, WiFi, Location, VCard and MeCard.
type Content interface {
	Type() ContentType
	// rules returns the checks in evaluation order; the first failure decides the result.
	rules() []validator.Rule
	encode(o encodeOptions) string
}

// URL is a link. Kind keeps the alias it was selected as (MP3, VIDEO, PDF, SOCIAL);
// an empty Kind means URL.
type URL struct {
	Kind    ContentType
	Address string
}

type WhatsApp struct {
	Phone string
}

type Phone struct {
	Number  string
	Subtype phone.Subtype
}

type Text struct {
	Body string
}

type Email struct {
	Address string
}

type SMS struct {
	Phone   string
	Subject string
	Body    string
}

// WiFi credentials. An empty Encryption encodes as WPA.
type WiFi struct {
	SSID       string
	Password   string
	Encryption string
}

// Location coordinates are kept as entered; empty values encode as 0.
type Location struct {
	Lat string
	Lng string
}

// Contact is the shared shape of the VCard and MeCard variants.
type Contact struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

type VCard Contact

type MeCard Contact

func (c URL) Type() ContentType {
	if c.Kind.IsURLAlias() {
		return c.Kind
	}
	return TypeURL
}

func (WhatsApp) Type() ContentType { return TypeWhatsApp }
func (Phone) Type() ContentType    { return TypePhone }
func (Text) Type() ContentType     { return TypeText }
func (Email) Type() ContentType    { return TypeEmail }
func (SMS) Type() ContentType      { return TypeSMS }
func (WiFi) Type() ContentType     { return TypeWiFi }
func (Location) Type() ContentType { return TypeLocation }
func (VCard) Type() ContentType    { return TypeVCard }
func (MeCard) Type() ContentType   { return TypeMeCard }

// FromFields projects the field bag onto the variant of t.
// Fields that t does not read are dropped. Unknown types yield nil.
func FromFields(t ContentType, s phone.Subtype, f Fields) Content {
	switch {
	case t.IsURLAlias():
		return URL{Kind: t, Address: f.Get(FieldURL)}
	case t == TypeWhatsApp:
		return WhatsApp{Phone: f.Get(FieldPhone)}
	case t == TypePhone:
		return Phone{Number: f.Get(FieldPhone), Subtype: s}
	case t == TypeText:
		return Text{Body: f.Get(FieldText)}
	case t == TypeEmail:
		return Email{Address: f.Get(FieldEmail)}
	case t == TypeSMS:
		return SMS{Phone: f.Get(FieldPhone), Subject: f.Get(FieldSubject), Body: f.Get(FieldBody)}
	case t == TypeWiFi:
		return WiFi{SSID: f.Get(FieldSSID), Password: f.Get(FieldPassword), Encryption: f.Get(FieldEncryption)}
	case t == TypeLocation:
		return Location{Lat: f.Get(FieldLat), Lng: f.Get(FieldLng)}
	case t == TypeVCard:
		return VCard(contactFromFields(f))
	case t == TypeMeCard:
		return MeCard(contactFromFields(f))
	}
	return nil
}

func contactFromFields(f Fields) Contact {
	return Contact{
		FirstName: f.Get(FieldFirstName),
		LastName:  f.Get(FieldLastName),
		Phone:     f.Get(FieldPhone),
		Email:     f.Get(FieldEmail),
	}
}

// ToFields is the inverse of FromFields: it returns the field bag of c.
func ToFields(c Content) Fields {
	switch v := c.(type) {
	case URL:
		return Fields{FieldURL: v.Address}
	case WhatsApp:
		return Fields{FieldPhone: v.Phone}
	case Phone:
		return Fields{FieldPhone: v.Number}
	case Text:
		return Fields{FieldText: v.Body}
	case Email:
		return Fields{FieldEmail: v.Address}
	case SMS:
		return Fields{FieldPhone: v.Phone, FieldSubject: v.Subject, FieldBody: v.Body}
	case WiFi:
		return Fields{FieldSSID: v.SSID, FieldPassword: v.Password, FieldEncryption: v.Encryption}
	case Location:
		return Fields{FieldLat: v.Lat, FieldLng: v.Lng}
	case VCard:
		return Contact(v).fields()
	case MeCard:
		return Contact(v).fields()
	}
	return Fields{}
}

func (c Contact) fields() Fields {
	return Fields{
		FieldFirstName: c.FirstName,
		FieldLastName:  c.LastName,
		FieldPhone:     c.Phone,
		FieldEmail:     c.Email,
	}
}
