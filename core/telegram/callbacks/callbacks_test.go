package callbacks

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestParseCallbackData(t *testing.T) {
	cases := []struct {
		data    string
		unique  string
		payload string
	}{
		{`\fitem|3`, "item", "3"},
		{`\ffilter|kitchen`, "filter", "kitchen"},
		{`\fquantity|8`, "quantity", "8"},
		{`\fplain`, "plain", ""},
		{``, "", ""},
	}
	for _, tc := range cases {
		unique, payload := ParseCallbackData(&tele.Callback{Data: tc.data})
		if unique != tc.unique || payload != tc.payload {
			t.Fatalf("%q -> (%q, %q), expected (%q, %q)", tc.data, unique, payload, tc.unique, tc.payload)
		}
	}
}

func TestParseCallbackDataNil(t *testing.T) {
	unique, payload := ParseCallbackData(nil)
	if unique != "" || payload != "" {
		t.Fatalf("nil callback -> (%q, %q)", unique, payload)
	}
}
