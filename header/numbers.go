package header

var (
	Content_Length         = define("Content-Length", parseDelta)
	Age                    = define("Age", parseDelta)
	Max_Forwards           = define("Max-Forwards", parseDelta)
	Access_Control_Max_Age = define("Access-Control-Max-Age", parseDelta)
)

// parseFlag accepts "0" and "1".
func parseFlag(v string) (int, bool) {
	switch v {
	case "0":
		return 0, true
	case "1":
		return 1, true
	default:
		return 0, false
	}
}

var (
	DNT                       = define("DNT", parseFlag)
	Upgrade_Insecure_Requests = define("Upgrade-Insecure-Requests", parseFlag)
)

var Save_Data = define("Save-Data", func(v string) (bool, bool) {
	switch v {
	case "on", "On", "1":
		return true, true
	case "off", "Off", "0":
		return false, true
	default:
		return false, false
	}
})

var Sec_Fetch_User = define("Sec-Fetch-User", func(v string) (bool, bool) {
	switch v {
	case "?1":
		return true, true
	case "?0":
		return false, true
	default:
		return false, false
	}
})

var Access_Control_Allow_Credentials = define("Access-Control-Allow-Credentials", func(v string) (bool, bool) {
	return true, v == "true"
})
