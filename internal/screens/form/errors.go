package form

import (
	"errors"

	"github.com/boaziz1447-maker/omar-alessa/internal/llm"
	"github.com/boaziz1447-maker/omar-alessa/internal/strategen"
)

// errorMessage maps gateway errors to the message shown in the form.
func errorMessage(err error) string {
	var (
		rateLimit   *llm.ErrRateLimit
		invalid     *llm.ErrInvalidResponse
		unavailable *llm.ErrProviderUnavailable
		maxTokens   *llm.ErrMaxTokensExceeded
		missingKey  *llm.ErrMissingAPIKey
		empty       *llm.ErrEmptyResponse
	)

	switch {
	case errors.Is(err, strategen.ErrBusy):
		return "هناك طلب توليد قيد التنفيذ، انتظر حتى ينتهي"
	case errors.As(err, &missingKey):
		return "لا يوجد مفتاح API، أضفه من شاشة الإعدادات"
	case errors.As(err, &rateLimit):
		return "تم تجاوز حد الطلبات، حاول مرة أخرى بعد قليل"
	case errors.As(err, &maxTokens):
		return "الاستجابة تجاوزت الحد المسموح، قلّص محتوى الدرس وحاول مجدداً"
	case errors.As(err, &empty):
		return "لم يُرجع النموذج أي محتوى، حاول مرة أخرى"
	case errors.As(err, &invalid):
		return "استجابة النموذج غير صالحة، حاول مرة أخرى"
	case errors.As(err, &unavailable):
		return "تعذر الوصول إلى مزود الذكاء الاصطناعي، تحقق من الاتصال"
	default:
		return "فشل التوليد: " + err.Error()
	}
}
