package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SmsAuto_Go/internal/domain"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{"plain code", "Your code is 483920, valid 5 min", "483920", true},
		{"code at start", "123456 is your code", "123456", true},
		{"code at end", "code:654321", "654321", true},
		{"leftmost wins", "first 111111 then 222222", "111111", true},
		{"chinese text", "【银行】您的验证码为778899，5分钟内有效", "778899", true},
		{"five digits only", "code 12345 here", "", false},
		{"split runs", "12345 and 6789", "", false},
		{"seven digits yield first six", "ref 1234567", "123456", true},
		{"phone number yields prefix", "call 13800138000", "138001", true},
		{"no digits", "No code here", "", false},
		{"empty", "", "", false},
		{"full width digits are not matched", "验证码１２３４５６", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractCode(tt.content)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveContent(t *testing.T) {
	assert.Equal(t, "short", ResolveContent("short", "long"))
	assert.Equal(t, "X", ResolveContent("", "X"))
	assert.Equal(t, domain.PlaceholderContent, ResolveContent("", ""))
}

func TestResolveSender(t *testing.T) {
	assert.Equal(t, "Bank", ResolveSender("Bank"))
	assert.Equal(t, domain.PlaceholderSender, ResolveSender(""))
}

func TestExtractor_Event(t *testing.T) {
	x := New(Options{})

	t.Run("bank notification", func(t *testing.T) {
		ev := x.Event(domain.Notification{
			PackageName: "com.bank.x",
			Title:       "Bank",
			Text:        "Your code is 483920, valid 5 min",
		})
		assert.Equal(t, domain.CodeEvent{
			Code:      "483920",
			Sender:    "Bank",
			Content:   "Your code is 483920, valid 5 min",
			SourceApp: "com.bank.x",
		}, ev)
	})

	t.Run("big text fallback is searched", func(t *testing.T) {
		ev := x.Event(domain.Notification{PackageName: "com.sms", BigText: "long message 246810"})
		assert.Equal(t, "246810", ev.Code)
		assert.Equal(t, "long message 246810", ev.Content)
		assert.Equal(t, domain.PlaceholderSender, ev.Sender)
	})

	t.Run("no content", func(t *testing.T) {
		ev := x.Event(domain.Notification{PackageName: "com.sms"})
		assert.False(t, ev.HasCode())
		assert.Equal(t, domain.PlaceholderContent, ev.Content)
		assert.Equal(t, domain.CodeNotRecognized, ev.CodeOrMissing())
	})
}

func TestExtractor_FoldWidth(t *testing.T) {
	n := domain.Notification{PackageName: "com.sms", Text: "验证码１２３４５６"}

	assert.False(t, New(Options{}).Event(n).HasCode())

	ev := New(Options{FoldWidth: true}).Event(n)
	assert.Equal(t, "123456", ev.Code)
	assert.Equal(t, "验证码１２３４５６", ev.Content, "content is shown as received")
}

func BenchmarkExtractCode(b *testing.B) {
	content := "【Bank】Your verification code is 483920. It expires in 5 minutes. Do not share it."
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ExtractCode(content)
	}
}
