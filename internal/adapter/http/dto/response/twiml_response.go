package response

import "encoding/xml"

// TwiMLContentType is the content type the messaging channel expects on
// webhook replies.
const TwiMLContentType = "text/xml; charset=utf-8"

// TwiML is the reply envelope of the messaging channel: a Response element
// wrapping a single Message element with the reply text.
type TwiML struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

func NewTwiML(message string) TwiML {
	return TwiML{Message: message}
}

// Render marshals the envelope, falling back to an empty Response if the
// reply text cannot be represented.
func (t TwiML) Render() []byte {
	data, err := xml.Marshal(t)
	if err != nil {
		return []byte("<Response></Response>")
	}
	return data
}
