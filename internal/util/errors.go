package util

import "errors"

var (
	ErrUserNotFound     = errors.New("الحساب غير موجود")
	ErrPhoneRegistered  = errors.New("رقم الجوال مسجل مسبقاً")
	ErrPermissionDenied = errors.New("permission denied")

	// Placement test engine.
	ErrNoSelection          = errors.New("no option selected")
	ErrInvalidOption        = errors.New("selected option is not one of A-D")
	ErrTestNotStarted       = errors.New("placement test not started")
	ErrTestFinished         = errors.New("placement test already finished")
	ErrNoQuestionsAvailable = errors.New("no placement questions available")

	// OTP.
	ErrOTPInvalid  = errors.New("رمز التحقق غير صحيح أو منتهي الصلاحية")
	ErrOTPThrottle = errors.New("الرجاء الانتظار قبل طلب رمز جديد")

	// Subscriptions and rewards.
	ErrPlanNotFound       = errors.New("الباقة غير موجودة")
	ErrPaymentNotVerified = errors.New("لم يتم التحقق من عملية الدفع")
	ErrInsufficientPoints = errors.New("رصيد النقاط غير كافٍ")

	ErrTicketClosed = errors.New("التذكرة مغلقة")
)
