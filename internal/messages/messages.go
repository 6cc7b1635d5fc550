// Package messages содержит все пользовательские тексты бота.
package messages

// Цитаты для главного меню, выбираются случайно.
var Quotes = []string{
	"Matematika — bu olamning tilidir. — Galileo Galilei",
	"Matematikada hech qachon xato qilmagan odam hech qachon yangi narsani kashf etmagan. — Carl Friedrich Gauss",
	"Matematika — bu bilimning malikasi. — Johann Bernoulli",
}

// Главное меню.
const (
	MainMenuFmt = "📜 *%s*\n\n" +
		"Xush kelibsiz, %s!\n" +
		"Matematika bilimlaringizni sinash uchun *Sinov testi* tugmasini bosing " +
		"yoki boshqa imkoniyatlarni ko'rish uchun tugmalardan birini tanlang."
	DefaultUserName = "aziz foydalanuvchi"

	StartTestButton   = "📝 Sinov testi"
	CoursesButton     = "📚 Kurslar haqida"
	ShowResultsButton = "📊 Natijalarim"
	MainMenuButton    = "🏠 Asosiy menyu"
	CoursesBackButton = "🔙 Kurslar ro'yxati"
)

// Анкета.
const (
	ClassPromptFmt = "Xush kelibsiz, %s! Siz bilan yaqinroq tanishish uchun nechanchi sinf o'quvchisi ekanligingizni tanlang:"
	ClassButtonFmt = "%s-sinf"
	SchoolBtnFmt   = "%s maktab"
	OtherSchoolBtn = "Boshqa maktab"
	SchoolPrompt   = "Tushundim, siz %s-sinf o'quvchisi ekansiz. Qaysi maktab o'quvchisisiz?"

	PhonePromptFmt = "Demak, siz %s o'quvchisisiz!\n\n" +
		"Aloqa uchun telefon raqamingizni yuboring (masalan, +998901234567) " +
		"yoki pastdagi tugma orqali kontaktni ulashing."
	ShareContactButton = "📱 Raqamni ulashish"
	InvalidPhone       = "Telefon raqami noto'g'ri formatda. Raqam + bilan boshlanishi va kamida 12 ta belgidan iborat bo'lishi kerak. Qayta urinib ko'ring."

	GroupPromptFmt = "Rahmat! Davom etish uchun rasmiy guruhimizga qo'shiling: %s\n" +
		"A'zo bo'lgach, pastdagi tugmani bosing."
	CheckGroupButton = "✅ A'zolikni tekshirish"
	NotGroupMember   = "Siz hali guruhga qo'shilmagansiz. Iltimos, avval guruhga qo'shiling, so'ng qayta tekshiring."
	GroupCheckFailed = "Bot guruh a'zoligini tekshira olmadi. Iltimos, administratorga murojaat qiling."
	OnboardingFirst  = "Iltimos, avval ro'yxatdan o'tishni yakunlang."
)

// Тест.
const (
	QuestionFmt           = "📝 Savol %d/%d:\n\n%s"
	QuotaExceeded         = "Kechirasiz, siz bugun maksimal 3 marta test topshira olasiz. Ertaga qayta urinib ko'ring."
	NoQuestions           = "Kechirasiz, savollar bazasida savollar topilmadi."
	InsufficientQuestions = "Test uchun yetarli savollar topilmadi. Iltimos, ma'muriyat bilan bog'laning."
	TestAlreadyActive     = "Sizda tugallanmagan test bor. Iltimos, avval uni yakunlang."
	TestDeliveryFailed    = "Test jarayonida xatolik yuz berdi. Iltimos, qayta urinib ko'ring."
	UseButtonsHint        = "Iltimos, testni tugatish uchun tugmalardan foydalaning."

	ResultHeaderFmt = "🎯 Test yakunlandi!\n\n" +
		"📊 *Test natijangiz:*\n" +
		"✅ To'g'ri javoblar: %d/%d\n" +
		"📈 Foiz: %.1f%%\n" +
		"🎯 Sizning darajangiz: *%s*\n\n"
	WrongAnswersHeader = "*Noto'g'ri javoblaringiz yechimlari:*\n"
	WrongAnswerFmt     = "❌ **%s**\nTo'g'ri javob: %s\nYechim: %s\n\n"
	RecommendationFmt  = "📚 Sizga tavsiya etilayotgan kurs: *%s*\n" +
		"🕐 Vaqti: %s\n" +
		"👨‍🏫 O'qituvchi: %s\n" +
		"📍 Manzil: %s\n" +
		"💰 Narxi: %s\n\n" +
		"📚 Kitoblar: %s\n\n" +
		"📞 *Ro'yxatdan o'tish uchun: +998507551023*\n" +
		"*@Shoxrux_Ibrohimov*"
	NotProvided        = "Malumot kiritilmagan"
	UnknownCourse      = "Nomalum"
	NoExplanation      = "Yechim topilmadi."
)

// Результаты.
const (
	NoResults     = "Sizda hali natijalar yo'q. Sinov testini topshirib ko'ring!"
	ResultsHeader = "📊 Sizning natijalaringiz:\n\n"
	ResultRowFmt  = "%d. Fan: %s\n   Natija: %d/%d (%.1f%%)\n   Sana: %s\n\n"
)

// Курсы.
const (
	CoursesIntro = "📚 Bizning kurslarimiz haqida ma'lumot olish uchun quyidagi tugmalardan birini tanlang: " +
		"kurs o'qituvchisi tel raqami: +998507551023"
	CourseNotFound  = "Kurs ma'lumoti topilmadi."
	CourseHeaderFmt = "📚 **%s**\n\n"
	CourseLevelFmt  = "🎯 **%s daraja:**\n" +
		"   🕐 Vaqt: %s\n" +
		"   👨‍🏫 O'qituvchi: %s\n" +
		"   📍 Manzil: %s\n" +
		"   💰 Narx: %s\n\n" +
		"   📚 Kitoblar: %s\n\n"
)

// Рассылка (только для оператора).
const (
	BroadcastPrompt     = "Yubormoqchi bo'lgan xabaringizni (matn yoki rasm) yuboring."
	BroadcastSummaryFmt = "Xabar yuborildi: %d ta, xatolik: %d ta."
	NotAllowed          = "Sizda bu amal uchun ruxsat yo'q."
)
