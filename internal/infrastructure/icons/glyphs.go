package icons

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	faHome         = "\uf015"
	faInfo         = "\uf05a"
	faWarning      = "\uf071"
	faGlobe        = "\uf0ac"
	faFileText     = "\uf0f6"
	faCog          = "\uf013"
	faUser         = "\uf007"
	faSearch       = "\uf002"
	faStar         = "\uf005"
	faHeart        = "\uf004"
	faCalendar     = "\uf073"
	faEnvelope     = "\uf0e0"
	faPhone        = "\uf095"
	faMapMarker    = "\uf041"
	faNewspaper    = "\uf1ea"
	faBars         = "\uf0c9"
	faChevronRight = "\uf054"
	faLink         = "\uf0c1"
	faBell         = "\uf0f3"
	faBook         = "\uf02d"
	faCamera       = "\uf030"
	faImage        = "\uf03e"
	faVideo        = "\uf03d"
	faDownload     = "\uf019"
	faShare        = "\uf1e0"
	faAnchor       = "\uf13d"
	faShip         = "\uf21a"
	faList         = "\uf03a"
	faQuestion     = "\uf059"
	faFacebook     = "\uf09a"
	faInstagram    = "\uf16d"
	faTwitter      = "\uf099"
	faYoutube      = "\uf167"
	faWhatsapp     = "\uf232"
	faGithub       = "\uf09b"
	faArrowLeft    = "\uf060"
	faExternalLink = "\uf08e"
	faLightbulb    = "\uf0eb"
	faBuilding     = "\uf1ad"
	faTruck        = "\uf0d1"

	mdHome         = "\U000f02dc"
	mdInformation  = "\U000f02fc"
	mdAlert        = "\U000f0026"
	mdWeb          = "\U000f059f"
	mdFileDocument = "\U000f0219"
	mdCog          = "\U000f0493"
	mdAccount      = "\U000f0004"
	mdMagnify      = "\U000f0349"
	mdStar         = "\U000f04ce"
	mdHeart        = "\U000f02d1"
	mdCalendar     = "\U000f00ed"
	mdEmail        = "\U000f01ee"
	mdPhone        = "\U000f03f2"
	mdMapMarker    = "\U000f034e"
	mdNewspaper    = "\U000f0395"
	mdMenu         = "\U000f035c"
	mdChevronRight = "\U000f0142"
	mdLink         = "\U000f0337"
	mdBell         = "\U000f009a"
	mdBook         = "\U000f00ba"
	mdCamera       = "\U000f0100"
	mdImage        = "\U000f02e9"
	mdVideo        = "\U000f0567"
	mdDownload     = "\U000f01da"
	mdShare        = "\U000f0497"
	mdAnchor       = "\U000f0031"
	mdFerry        = "\U000f0224"
	mdListBulleted = "\U000f0279"
	mdHelpCircle   = "\U000f02d7"
	mdArrowLeft    = "\U000f004d"
	mdOpenInNew    = "\U000f03cc"
	mdTruck        = "\U000f053d"
	mdDomain       = "\U000f01d7"
)

var ioniconsGlyphs = map[string]string{
	"home":               mdHome,
	"information-circle": mdInformation,
	"information":        mdInformation,
	"alert":              mdAlert,
	"alert-circle":       mdAlert,
	"warning":            mdAlert,
	"globe":              mdWeb,
	"document":           mdFileDocument,
	"document-text":      mdFileDocument,
	"settings":           mdCog,
	"person":             mdAccount,
	"search":             mdMagnify,
	"star":               mdStar,
	"heart":              mdHeart,
	"calendar":           mdCalendar,
	"mail":               mdEmail,
	"call":               mdPhone,
	"location":           mdMapMarker,
	"pin":                mdMapMarker,
	"newspaper":          mdNewspaper,
	"menu":               mdMenu,
	"list":               mdListBulleted,
	"chevron-forward":    mdChevronRight,
	"arrow-forward":      mdChevronRight,
	"arrow-back":         mdArrowLeft,
	"link":               mdLink,
	"open":               mdOpenInNew,
	"notifications":      mdBell,
	"book":               mdBook,
	"camera":             mdCamera,
	"image":              mdImage,
	"videocam":           mdVideo,
	"download":           mdDownload,
	"share":              mdShare,
	"share-social":       mdShare,
	"boat":               mdFerry,
	"business":           mdDomain,
	"bus":                mdTruck,
	"help-circle":        mdHelpCircle,
	"facebook":           faFacebook,
	"instagram":          faInstagram,
	"twitter":            faTwitter,
	"youtube":            faYoutube,
	"whatsapp":           faWhatsapp,
	"github":             faGithub,
}

var materialGlyphs = map[string]string{
	"home":            mdHome,
	"info":            mdInformation,
	"info-outline":    mdInformation,
	"warning":         mdAlert,
	"error":           mdAlert,
	"public":          mdWeb,
	"language":        mdWeb,
	"description":     mdFileDocument,
	"article":         mdFileDocument,
	"settings":        mdCog,
	"person":          mdAccount,
	"search":          mdMagnify,
	"star":            mdStar,
	"favorite":        mdHeart,
	"event":           mdCalendar,
	"email":           mdEmail,
	"phone":           mdPhone,
	"place":           mdMapMarker,
	"location-on":     mdMapMarker,
	"menu":            mdMenu,
	"list":            mdListBulleted,
	"chevron-right":   mdChevronRight,
	"arrow-back":      mdArrowLeft,
	"link":            mdLink,
	"open-in-new":     mdOpenInNew,
	"notifications":   mdBell,
	"book":            mdBook,
	"camera-alt":      mdCamera,
	"image":           mdImage,
	"videocam":        mdVideo,
	"file-download":   mdDownload,
	"download":        mdDownload,
	"share":           mdShare,
	"directions-boat": mdFerry,
	"anchor":          mdAnchor,
	"local-shipping":  mdTruck,
	"business":        mdDomain,
	"help":            mdHelpCircle,
}

var fontAwesomeGlyphs = map[string]string{
	"home":                 faHome,
	"info":                 faInfo,
	"info-circle":          faInfo,
	"warning":              faWarning,
	"exclamation-triangle": faWarning,
	"globe":                faGlobe,
	"file-text":            faFileText,
	"file-text-o":          faFileText,
	"cog":                  faCog,
	"gear":                 faCog,
	"user":                 faUser,
	"search":               faSearch,
	"star":                 faStar,
	"heart":                faHeart,
	"calendar":             faCalendar,
	"envelope":             faEnvelope,
	"phone":                faPhone,
	"map-marker":           faMapMarker,
	"newspaper-o":          faNewspaper,
	"newspaper":            faNewspaper,
	"bars":                 faBars,
	"list":                 faList,
	"chevron-right":        faChevronRight,
	"arrow-left":           faArrowLeft,
	"link":                 faLink,
	"external-link":        faExternalLink,
	"bell":                 faBell,
	"book":                 faBook,
	"camera":               faCamera,
	"image":                faImage,
	"picture-o":            faImage,
	"video-camera":         faVideo,
	"download":             faDownload,
	"share-alt":            faShare,
	"anchor":               faAnchor,
	"ship":                 faShip,
	"truck":                faTruck,
	"building":             faBuilding,
	"lightbulb-o":          faLightbulb,
	"question-circle":      faQuestion,
	"facebook":             faFacebook,
	"instagram":            faInstagram,
	"twitter":              faTwitter,
	"youtube":              faYoutube,
	"whatsapp":             faWhatsapp,
	"github":               faGithub,
}

var communityGlyphs = map[string]string{
	"home":                 mdHome,
	"information":          mdInformation,
	"information-outline":  mdInformation,
	"alert":                mdAlert,
	"alert-circle":         mdAlert,
	"web":                  mdWeb,
	"earth":                mdWeb,
	"file-document":        mdFileDocument,
	"cog":                  mdCog,
	"account":              mdAccount,
	"magnify":              mdMagnify,
	"star":                 mdStar,
	"heart":                mdHeart,
	"calendar":             mdCalendar,
	"email":                mdEmail,
	"phone":                mdPhone,
	"map-marker":           mdMapMarker,
	"newspaper":            mdNewspaper,
	"menu":                 mdMenu,
	"format-list-bulleted": mdListBulleted,
	"chevron-right":        mdChevronRight,
	"arrow-left":           mdArrowLeft,
	"link":                 mdLink,
	"open-in-new":          mdOpenInNew,
	"bell":                 mdBell,
	"book":                 mdBook,
	"camera":               mdCamera,
	"image":                mdImage,
	"video":                mdVideo,
	"download":             mdDownload,
	"share-variant":        mdShare,
	"anchor":               mdAnchor,
	"ferry":                mdFerry,
	"truck":                mdTruck,
	"domain":               mdDomain,
	"help-circle":          mdHelpCircle,
}
