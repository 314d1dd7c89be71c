package platform

// builtin is the fixed ordered registry. Append-only across versions:
// new platforms go at the end of their block, never in the middle, so
// persisted selections stay meaningful.
var builtin = []Platform{
	// OTT / long-form video
	{
		ID: "youtube", Name: "YouTube", Category: CategoryOTT,
		Hint: "Videos, music, live streams", Icon: "▶",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.youtube.com/results", Param: "search_query"},
	},
	{
		ID: "netflix", Name: "Netflix", Category: CategoryOTT,
		Hint: "Movies and series", Icon: "N",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.netflix.com/search", Param: "q"},
	},
	{
		ID: "primevideo", Name: "Prime Video", Category: CategoryOTT,
		Hint: "Amazon originals and rentals", Icon: "Pv",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.primevideo.com/search", Param: "phrase"},
	},
	{
		ID: "hotstar", Name: "Disney+ Hotstar", Category: CategoryOTT,
		Hint: "Disney, sports, Indian originals", Icon: "D+",
		Strategy: Strategy{Kind: StrategySite, Domain: "hotstar.com"},
	},
	{
		ID: "hulu", Name: "Hulu", Category: CategoryOTT,
		Hint: "US streaming and next-day TV", Icon: "hu",
		Strategy: Strategy{Kind: StrategySite, Domain: "hulu.com"},
	},
	{
		ID: "appletv", Name: "Apple TV+", Category: CategoryOTT,
		Hint: "Apple originals", Icon: "tv",
		Strategy: Strategy{Kind: StrategySite, Domain: "tv.apple.com"},
	},
	{
		ID: "vimeo", Name: "Vimeo", Category: CategoryOTT,
		Hint: "Creator and indie video", Icon: "V",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://vimeo.com/search", Param: "q"},
	},
	{
		ID: "dailymotion", Name: "Dailymotion", Category: CategoryOTT,
		Hint: "General video hosting", Icon: "d",
		Strategy: Strategy{Kind: StrategySite, Domain: "dailymotion.com"},
	},

	// Short-form
	{
		ID: "tiktok", Name: "TikTok", Category: CategoryShorts,
		Hint: "Short vertical video", Icon: "♪",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.tiktok.com/search", Param: "q"},
	},
	{
		ID: "ytshorts", Name: "YouTube Shorts", Category: CategoryShorts,
		Hint: "YouTube's short-form feed", Icon: "▶s",
		Strategy: Strategy{Kind: StrategySite, Domain: "youtube.com/shorts"},
	},
	{
		ID: "reels", Name: "Instagram Reels", Category: CategoryShorts,
		Hint: "Instagram short video", Icon: "◎",
		Strategy: Strategy{Kind: StrategySite, Domain: "instagram.com/reels"},
	},
	{
		ID: "snapchat", Name: "Snapchat Spotlight", Category: CategoryShorts,
		Hint: "Snapchat's public shorts", Icon: "👻",
		Strategy: Strategy{Kind: StrategySite, Domain: "snapchat.com/spotlight"},
	},

	// Education
	{
		ID: "khan", Name: "Khan Academy", Category: CategoryEducation,
		Hint: "Free courses and lessons", Icon: "K",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.khanacademy.org/search", Param: "page_search_query"},
	},
	{
		ID: "coursera", Name: "Coursera", Category: CategoryEducation,
		Hint: "University courses", Icon: "C",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.coursera.org/search", Param: "query"},
	},
	{
		ID: "udemy", Name: "Udemy", Category: CategoryEducation,
		Hint: "Paid video courses", Icon: "U",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.udemy.com/courses/search/", Param: "q"},
	},
	{
		ID: "edx", Name: "edX", Category: CategoryEducation,
		Hint: "MOOCs from universities", Icon: "eX",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.edx.org/search", Param: "q"},
	},
	{
		ID: "skillshare", Name: "Skillshare", Category: CategoryEducation,
		Hint: "Creative skill classes", Icon: "S",
		Strategy: Strategy{Kind: StrategySite, Domain: "skillshare.com"},
	},

	// News
	{
		ID: "bbc", Name: "BBC", Category: CategoryNews,
		Hint: "BBC news and video", Icon: "B",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.bbc.co.uk/search", Param: "q"},
	},
	{
		ID: "cnn", Name: "CNN", Category: CategoryNews,
		Hint: "CNN coverage", Icon: "cn",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://edition.cnn.com/search", Param: "q"},
	},
	{
		ID: "aljazeera", Name: "Al Jazeera", Category: CategoryNews,
		Hint: "Global news", Icon: "aj",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.aljazeera.com/search/", Param: "q"},
	},
	{
		ID: "reuters", Name: "Reuters", Category: CategoryNews,
		Hint: "Wire reporting", Icon: "R",
		Strategy: Strategy{Kind: StrategySite, Domain: "reuters.com"},
	},
	{
		ID: "ndtv", Name: "NDTV", Category: CategoryNews,
		Hint: "Indian news", Icon: "nd",
		Strategy: Strategy{Kind: StrategySite, Domain: "ndtv.com"},
	},

	// Social
	{
		ID: "reddit", Name: "Reddit", Category: CategorySocial,
		Hint: "Communities and discussion", Icon: "r/",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.reddit.com/search/", Param: "q"},
	},
	{
		ID: "x", Name: "X", Category: CategorySocial,
		Hint: "Posts and live clips", Icon: "X",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://x.com/search", Param: "q"},
	},
	{
		ID: "facebook", Name: "Facebook Watch", Category: CategorySocial,
		Hint: "Facebook video search", Icon: "f",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.facebook.com/search/videos/", Param: "q"},
	},
	{
		ID: "linkedin", Name: "LinkedIn", Category: CategorySocial,
		Hint: "Professional content", Icon: "in",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.linkedin.com/search/results/content/", Param: "keywords"},
	},

	// Gaming
	{
		ID: "twitch", Name: "Twitch", Category: CategoryGaming,
		Hint: "Live game streams", Icon: "tw",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://www.twitch.tv/search", Param: "term"},
	},
	{
		ID: "kick", Name: "Kick", Category: CategoryGaming,
		Hint: "Live streaming", Icon: "k",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://kick.com/search", Param: "query"},
	},
	{
		ID: "steam", Name: "Steam", Category: CategoryGaming,
		Hint: "Games and trailers", Icon: "st",
		Strategy: Strategy{Kind: StrategyDirect, BaseURL: "https://store.steampowered.com/search/", Param: "term"},
	},
	{
		ID: "ytgaming", Name: "YouTube Gaming", Category: CategoryGaming,
		Hint: "Gaming video on YouTube", Icon: "▶g",
		Strategy: Strategy{Kind: StrategySite, Domain: "youtube.com/gaming"},
	},
}

// Registry returns the ordered platform list. Callers must not mutate
// the returned slice; a fresh copy is handed out each call.
func Registry() []Platform {
	out := make([]Platform, len(builtin))
	copy(out, builtin)
	return out
}

// ByID returns the platform with the given id, if registered
func ByID(platforms []Platform, id string) (Platform, bool) {
	for _, p := range platforms {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}

// IDs returns the ids of the given platforms in order
func IDs(platforms []Platform) []string {
	out := make([]string, 0, len(platforms))
	for _, p := range platforms {
		out = append(out, p.ID)
	}
	return out
}
