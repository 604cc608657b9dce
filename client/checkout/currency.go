package checkout

// Three-letter ISO currency codes supported by the gateway
type Currency string

const (
	CURRENCY_AED Currency = "AED"
	CURRENCY_AFN Currency = "AFN"
	CURRENCY_ALL Currency = "ALL"
	CURRENCY_AMD Currency = "AMD"
	CURRENCY_ANG Currency = "ANG"
	CURRENCY_AOA Currency = "AOA"
	CURRENCY_ARS Currency = "ARS"
	CURRENCY_AUD Currency = "AUD"
	CURRENCY_AWG Currency = "AWG"
	CURRENCY_AZN Currency = "AZN"
	CURRENCY_BAM Currency = "BAM"
	CURRENCY_BBD Currency = "BBD"
	CURRENCY_BDT Currency = "BDT"
	CURRENCY_BGN Currency = "BGN"
	CURRENCY_BHD Currency = "BHD"
	CURRENCY_BIF Currency = "BIF"
	CURRENCY_BMD Currency = "BMD"
	CURRENCY_BND Currency = "BND"
	CURRENCY_BOB Currency = "BOB"
	CURRENCY_BRL Currency = "BRL"
	CURRENCY_BSD Currency = "BSD"
	CURRENCY_BTN Currency = "BTN"
	CURRENCY_BWP Currency = "BWP"
	CURRENCY_BYN Currency = "BYN"
	CURRENCY_BZD Currency = "BZD"
	CURRENCY_CAD Currency = "CAD"
	CURRENCY_CDF Currency = "CDF"
	CURRENCY_CHF Currency = "CHF"
	CURRENCY_CLF Currency = "CLF"
	CURRENCY_CLP Currency = "CLP"
	CURRENCY_CNY Currency = "CNY"
	CURRENCY_COP Currency = "COP"
	CURRENCY_CRC Currency = "CRC"
	CURRENCY_CVE Currency = "CVE"
	CURRENCY_CZK Currency = "CZK"
	CURRENCY_DJF Currency = "DJF"
	CURRENCY_DKK Currency = "DKK"
	CURRENCY_DOP Currency = "DOP"
	CURRENCY_DZD Currency = "DZD"
	CURRENCY_EEK Currency = "EEK"
	CURRENCY_EGP Currency = "EGP"
	CURRENCY_ERN Currency = "ERN"
	CURRENCY_ETB Currency = "ETB"
	CURRENCY_EUR Currency = "EUR"
	CURRENCY_FJD Currency = "FJD"
	CURRENCY_FKP Currency = "FKP"
	CURRENCY_GBP Currency = "GBP"
	CURRENCY_GEL Currency = "GEL"
	CURRENCY_GHS Currency = "GHS"
	CURRENCY_GIP Currency = "GIP"
	CURRENCY_GMD Currency = "GMD"
	CURRENCY_GNF Currency = "GNF"
	CURRENCY_GTQ Currency = "GTQ"
	CURRENCY_GYD Currency = "GYD"
	CURRENCY_HKD Currency = "HKD"
	CURRENCY_HNL Currency = "HNL"
	CURRENCY_HRK Currency = "HRK"
	CURRENCY_HTG Currency = "HTG"
	CURRENCY_HUF Currency = "HUF"
	CURRENCY_IDR Currency = "IDR"
	CURRENCY_ILS Currency = "ILS"
	CURRENCY_INR Currency = "INR"
	CURRENCY_IQD Currency = "IQD"
	CURRENCY_IRR Currency = "IRR"
	CURRENCY_ISK Currency = "ISK"
	CURRENCY_JMD Currency = "JMD"
	CURRENCY_JOD Currency = "JOD"
	CURRENCY_JPY Currency = "JPY"
	CURRENCY_KES Currency = "KES"
	CURRENCY_KGS Currency = "KGS"
	CURRENCY_KHR Currency = "KHR"
	CURRENCY_KMF Currency = "KMF"
	CURRENCY_KPW Currency = "KPW"
	CURRENCY_KRW Currency = "KRW"
	CURRENCY_KWD Currency = "KWD"
	CURRENCY_KYD Currency = "KYD"
	CURRENCY_KZT Currency = "KZT"
	CURRENCY_LAK Currency = "LAK"
	CURRENCY_LBP Currency = "LBP"
	CURRENCY_LKR Currency = "LKR"
	CURRENCY_LRD Currency = "LRD"
	CURRENCY_LSL Currency = "LSL"
	CURRENCY_LTL Currency = "LTL"
	CURRENCY_LVL Currency = "LVL"
	CURRENCY_LYD Currency = "LYD"
	CURRENCY_MAD Currency = "MAD"
	CURRENCY_MDL Currency = "MDL"
	CURRENCY_MGA Currency = "MGA"
	CURRENCY_MKD Currency = "MKD"
	CURRENCY_MMK Currency = "MMK"
	CURRENCY_MNT Currency = "MNT"
	CURRENCY_MOP Currency = "MOP"
	CURRENCY_MRO Currency = "MRO"
	CURRENCY_MUR Currency = "MUR"
	CURRENCY_MVR Currency = "MVR"
	CURRENCY_MWK Currency = "MWK"
	CURRENCY_MXN Currency = "MXN"
	CURRENCY_MYR Currency = "MYR"
	CURRENCY_MZN Currency = "MZN"
	CURRENCY_NAD Currency = "NAD"
	CURRENCY_NGN Currency = "NGN"
	CURRENCY_NIO Currency = "NIO"
	CURRENCY_NOK Currency = "NOK"
	CURRENCY_NPR Currency = "NPR"
	CURRENCY_NZD Currency = "NZD"
	CURRENCY_OMR Currency = "OMR"
	CURRENCY_PAB Currency = "PAB"
	CURRENCY_PEN Currency = "PEN"
	CURRENCY_PGK Currency = "PGK"
	CURRENCY_PHP Currency = "PHP"
	CURRENCY_PKR Currency = "PKR"
	CURRENCY_PLN Currency = "PLN"
	CURRENCY_PYG Currency = "PYG"
	CURRENCY_QAR Currency = "QAR"
	CURRENCY_RON Currency = "RON"
	CURRENCY_RSD Currency = "RSD"
	CURRENCY_RUB Currency = "RUB"
	CURRENCY_RWF Currency = "RWF"
	CURRENCY_SAR Currency = "SAR"
	CURRENCY_SBD Currency = "SBD"
	CURRENCY_SCR Currency = "SCR"
	CURRENCY_SDG Currency = "SDG"
	CURRENCY_SEK Currency = "SEK"
	CURRENCY_SGD Currency = "SGD"
	CURRENCY_SHP Currency = "SHP"
	CURRENCY_SLL Currency = "SLL"
	CURRENCY_SOS Currency = "SOS"
	CURRENCY_SRD Currency = "SRD"
	CURRENCY_STD Currency = "STD"
	CURRENCY_SVC Currency = "SVC"
	CURRENCY_SYP Currency = "SYP"
	CURRENCY_SZL Currency = "SZL"
	CURRENCY_THB Currency = "THB"
	CURRENCY_TJS Currency = "TJS"
	CURRENCY_TMT Currency = "TMT"
	CURRENCY_TND Currency = "TND"
	CURRENCY_TOP Currency = "TOP"
	CURRENCY_TRY Currency = "TRY"
	CURRENCY_TTD Currency = "TTD"
	CURRENCY_TWD Currency = "TWD"
	CURRENCY_TZS Currency = "TZS"
	CURRENCY_UAH Currency = "UAH"
	CURRENCY_UGX Currency = "UGX"
	CURRENCY_USD Currency = "USD"
	CURRENCY_UYU Currency = "UYU"
	CURRENCY_UZS Currency = "UZS"
	CURRENCY_VES Currency = "VES"
	CURRENCY_VND Currency = "VND"
	CURRENCY_VUV Currency = "VUV"
	CURRENCY_WST Currency = "WST"
	CURRENCY_XAF Currency = "XAF"
	CURRENCY_XCD Currency = "XCD"
	CURRENCY_XOF Currency = "XOF"
	CURRENCY_XPF Currency = "XPF"
	CURRENCY_YER Currency = "YER"
	CURRENCY_ZAR Currency = "ZAR"
	CURRENCY_ZMW Currency = "ZMW"
	CURRENCY_ZWL Currency = "ZWL"
)

func (c Currency) String() string {
	return string(c)
}

// Exponent returns the power of ten between the currency's face value and its
// minor-unit wire encoding. Most currencies are charged in hundredths; a few
// have no minor unit at all, and a few Middle East dinars use thousandths.
func (c Currency) Exponent() int32 {
	switch c {
	case CURRENCY_BIF, CURRENCY_CLF, CURRENCY_DJF, CURRENCY_GNF, CURRENCY_ISK,
		CURRENCY_JPY, CURRENCY_KMF, CURRENCY_KRW, CURRENCY_PYG, CURRENCY_RWF,
		CURRENCY_UGX, CURRENCY_VND, CURRENCY_VUV, CURRENCY_XAF, CURRENCY_XOF,
		CURRENCY_XPF:
		// Zero-decimal: value = 100 is 100 Japanese Yen.
		return 0
	case CURRENCY_BHD, CURRENCY_IQD, CURRENCY_JOD, CURRENCY_KWD, CURRENCY_LYD,
		CURRENCY_OMR, CURRENCY_TND:
		// Three-decimal: value = 1000 is 1 Bahraini Dinar.
		return 3
	default:
		// Everything else: value = 100 is 1 US Dollar.
		return 2
	}
}
