package payload

import "github.com/dmitrymomot/qrkit/pkg/phone"

// Form holds the state of one editing session: the active content type, the
// phone subtype and the field bag shared by every type.
// A Form is not safe for concurrent use.
type Form struct {
	typ           ContentType
	initial       ContentType
	subtype       phone.Subtype
	fields        Fields
	clearOnSwitch bool
	encodeOpts    []EncodeOption
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithClearOnSwitch discards field values whenever the content type changes.
// By default values survive switches so users can move between types without retyping.
func WithClearOnSwitch() FormOption {
	return func(f *Form) {
		f.clearOnSwitch = true
	}
}

// WithEncodeOptions sets the options Form.Encode passes to Encode.
func WithEncodeOptions(opts ...EncodeOption) FormOption {
	return func(f *Form) {
		f.encodeOpts = append(f.encodeOpts, opts...)
	}
}

// WithInitialType selects the content type a new form starts with.
func WithInitialType(t ContentType) FormOption {
	return func(f *Form) {
		if t.Valid() {
			f.typ = t
		}
	}
}

// NewForm returns a form set to URL, or the WithInitialType choice, with the default phone subtype.
func NewForm(opts ...FormOption) *Form {
	f := &Form{
		typ:     TypeURL,
		subtype: phone.Default,
		fields:  make(Fields),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.initial = f.typ
	return f
}

func (f *Form) Type() ContentType {
	return f.typ
}

// SetType switches the active content type. Unknown types are ignored.
func (f *Form) SetType(t ContentType) {
	if !t.Valid() || t == f.typ {
		return
	}
	f.typ = t
	if f.clearOnSwitch {
		f.fields = make(Fields)
	}
}

func (f *Form) PhoneSubtype() phone.Subtype {
	return f.subtype
}

// SetPhoneSubtype changes the subtype and re-masks the current phone value for it.
func (f *Form) SetPhoneSubtype(s phone.Subtype) {
	if !s.Valid() {
		return
	}
	f.subtype = s
	if f.typ == TypePhone {
		f.fields[FieldPhone] = phone.Mask(f.fields.Get(FieldPhone), s)
	}
}

// SetField stores value under key. While PHONE is active the phone field is masked.
func (f *Form) SetField(key, value string) {
	if key == FieldPhone && f.typ == TypePhone {
		value = phone.Mask(value, f.subtype)
	}
	f.fields[key] = value
}

// Field returns the value of key, or "".
func (f *Form) Field(key string) string {
	return f.fields.Get(key)
}

// Fields returns a copy of the field bag.
func (f *Form) Fields() Fields {
	return f.fields.Clone()
}

// Content returns the typed content of the active type.
func (f *Form) Content() Content {
	return FromFields(f.typ, f.subtype, f.fields)
}

func (f *Form) Validate() Result {
	return Validate(f.Content())
}

func (f *Form) Encode() string {
	return Encode(f.Content(), f.encodeOpts...)
}

// ApplyTemplate switches to URL and replaces the field bag with the template content.
// An empty content leaves the form untouched.
func (f *Form) ApplyTemplate(content string) {
	if content == "" {
		return
	}
	f.typ = TypeURL
	f.fields = Fields{FieldURL: content}
}

// Reset restores the initial state, keeping the configured options.
func (f *Form) Reset() {
	f.typ = f.initial
	f.subtype = phone.Default
	f.fields = make(Fields)
}
