package i18n

// arabic maps English message keys to their Arabic text. Keys are the English
// source strings, formats included.
var arabic = map[string]string{
	// table labels
	"Search...":                      "بحث...",
	"No data found":                  "لا توجد بيانات",
	"Showing %d to %d of %d results": "عرض %d إلى %d من %d نتيجة",
	"First page":                     "الصفحة الأولى",
	"Previous page":                  "الصفحة السابقة",
	"Next page":                      "الصفحة التالية",
	"Last page":                      "الصفحة الأخيرة",
	"Page %d":                        "صفحة %d",

	// screens
	"Orders":            "الطلبات",
	"Customer Invoices": "فواتير العملاء",
	"Sales Returns":     "المرتجعات",
	"Vouchers":          "القسائم",
	"Payments":          "المدفوعات",
	"Inventory":         "المخزون",

	// column headers
	"Order #":       "رقم الطلب",
	"Customer":      "العميل",
	"Channel":       "القناة",
	"Table":         "الطاولة",
	"Status":        "الحالة",
	"Total":         "الإجمالي",
	"Placed At":     "وقت الطلب",
	"Seller":        "البائع",
	"Courier":       "المندوب",
	"Invoice #":     "رقم الفاتورة",
	"Amount":        "المبلغ",
	"Issued At":     "تاريخ الإصدار",
	"Due At":        "تاريخ الاستحقاق",
	"Return #":      "رقم المرتجع",
	"Reason":        "السبب",
	"Requested At":  "تاريخ الطلب",
	"Code":          "الرمز",
	"Description":   "الوصف",
	"Type":          "النوع",
	"Value":         "القيمة",
	"Valid From":    "صالح من",
	"Valid Until":   "صالح حتى",
	"Uses":          "مرات الاستخدام",
	"Reference":     "المرجع",
	"Method":        "طريقة الدفع",
	"Paid At":       "تاريخ الدفع",
	"SKU":           "رمز الصنف",
	"Name":          "الاسم",
	"Category":      "الفئة",
	"Quantity":      "الكمية",
	"Unit":          "الوحدة",
	"Reorder Level": "حد إعادة الطلب",
	"Unit Cost":     "تكلفة الوحدة",
	"Stock":         "المخزون",
	"Updated At":    "آخر تحديث",
}
