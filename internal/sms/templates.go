package sms

import "strings"

// namePlaceholder is substituted into a template when no single recipient
// name applies (bulk send).
const namePlaceholder = "OOO"

// Template is a canned message with the recipient name substituted in.
type Template struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

var templates = []Template{
	{
		ID:    "greeting",
		Title: "기본 안부",
		Body:  "안녕하세요 {이름} 고객님! 인슈어플래너 담당 설계사입니다. 별일 없이 평안하신지요? 보험 관련 궁금한 점 있으시면 언제든 연락 주세요.",
	},
	{
		ID:    "expiry",
		Title: "만기 안내",
		Body:  "안녕하세요 {이름} 고객님. 가입하신 보험의 만기일이 다가오고 있어 안내드립니다. 보장 공백이 생기지 않도록 검토가 필요합니다.",
	},
	{
		ID:    "product",
		Title: "상품 안내",
		Body:  "[안내] 안녕하세요 {이름} 고객님. 최근 보장 범위가 확대된 신규 상품이 출시되어 정보 공유드립니다. 관심 있으시면 상담 도와드리겠습니다.",
	},
	{
		ID:    "birthday",
		Title: "생일 축하",
		Body:  "🎉 {이름} 고객님, 생신을 진심으로 축하드립니다! 오늘 하루 세상에서 가장 행복하고 따뜻한 시간 보내시길 바랍니다.",
	},
}

// Templates returns the canned messages with the placeholder left in place.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// RenderTemplate fills the recipient name into the template body. With more
// than one recipient the generic placeholder is used, matching the client's
// bulk-send preview. Returns false for an unknown template id.
func RenderTemplate(id string, recipientNames []string) (string, bool) {
	name := namePlaceholder
	if len(recipientNames) == 1 {
		name = recipientNames[0]
	}

	for _, t := range templates {
		if t.ID == id {
			return strings.ReplaceAll(t.Body, "{이름}", name), true
		}
	}
	return "", false
}
