package header

// Fetch metadata request fields (https://w3c.github.io/webappsec-fetch-metadata/).
var (
	Sec_Fetch_Dest = define("Sec-Fetch-Dest", oneOf(
		"audio", "audioworklet", "document", "embed", "empty", "fencedframe", "font",
		"frame", "iframe", "image", "json", "manifest", "object", "paintworklet",
		"report", "script", "serviceworker", "sharedworker", "style", "track", "video",
		"webidentity", "worker", "xslt",
	))
	Sec_Fetch_Mode = define("Sec-Fetch-Mode", oneOf("cors", "navigate", "no-cors", "same-origin", "websocket"))
	Sec_Fetch_Site = define("Sec-Fetch-Site", oneOf("cross-site", "same-origin", "same-site", "none"))
)

var (
	X_Content_Type_Options = define("X-Content-Type-Options", oneOfFold("nosniff"))
	X_Frame_Options        = define("X-Frame-Options", oneOfFold("DENY", "SAMEORIGIN"))
)
