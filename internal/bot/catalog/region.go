package catalog

// Server is a game server inside a region.
type Server struct {
	Code string
	Name string
}

// Region groups servers under a short code used in action tokens and storage.
type Region struct {
	Code    string
	Name    string
	Servers []Server
}

// Server looks up a server of r by code.
func (r Region) Server(code string) (Server, bool) {
	for _, s := range r.Servers {
		if s.Code == code {
			return s, true
		}
	}
	return Server{}, false
}

var regions = []Region{
	{Code: "na", Name: "🇺🇸 Північна Америка (NA)", Servers: []Server{
		{"na_oregon", "🇺🇸 Орегон (Портленд)"},
		{"na_california", "🇺🇸 Північна Каліфорнія (Сан-Хосе)"},
		{"na_texas", "🇺🇸 Техас (Даллас)"},
		{"na_georgia", "🇺🇸 Джорджія (Атланта)"},
		{"na_virginia", "🇺🇸 Вірджинія (Ашберн)"},
		{"na_illinois", "🇺🇸 Іллінойс (Чикаго)"},
	}},
	{Code: "eu", Name: "🇪🇺 Європа (EMEA/EU)", Servers: []Server{
		{"eu_london", "🇬🇧 Лондон (Великобританія)"},
		{"eu_paris", "🇫🇷 Париж (Франція)"},
		{"eu_frankfurt", "🇩🇪 Франкфурт (Німеччина)"},
		{"eu_stockholm", "🇸🇪 Стокгольм (Швеція)"},
		{"eu_istanbul", "🇹🇷 Стамбул (Туреччина)"},
		{"eu_warsaw", "🇵🇱 Варшава (Польща)"},
		{"eu_madrid", "🇪🇸 Мадрид (Іспанія)"},
		{"eu_bahrain", "🇧🇭 Бахрейн (Манама)"},
	}},
	{Code: "ap", Name: "🌏 Азіатсько-Тихоокеанський регіон (AP)", Servers: []Server{
		{"ap_tokyo", "🇯🇵 Токіо (Японія)"},
		{"ap_singapore", "🇸🇬 Сингапур"},
		{"ap_sydney", "🇦🇺 Сідней (Австралія)"},
		{"ap_mumbai", "🇮🇳 Мумбаї (Індія)"},
		{"ap_hongkong", "🇭🇰 Гонконг (Китай)"},
		{"ap_seoul", "🇰🇷 Сеул (Південна Корея)"},
	}},
	{Code: "latam", Name: "🇲🇽 Латинська Америка (LATAM)", Servers: []Server{
		{"latam_santiago", "🇨🇱 Сантьяго (Чилі)"},
		{"latam_mexico", "🇲🇽 Мехіко (Мексика)"},
		{"latam_miami", "🇺🇸 Маямі (США)"},
	}},
	{Code: "br", Name: "🇧🇷 Бразилія (BR)", Servers: []Server{
		{"br_saopaulo", "🇧🇷 Сан-Паулу (Бразилія)"},
	}},
	{Code: "kr", Name: "🇰🇷 Корея (KR)", Servers: []Server{
		{"kr_seoul", "🇰🇷 Сеул (Південна Корея)"},
	}},
	{Code: "cn", Name: "🇨🇳 Китай (CN)", Servers: []Server{
		{"cn_guangzhou", "🇨🇳 Гуанчжоу"},
		{"cn_nanjing", "🇨🇳 Нанкін"},
		{"cn_chongqing", "🇨🇳 Чунцін"},
		{"cn_tianjin", "🇨🇳 Тяньцзінь"},
	}},
}

// Regions returns all regions in display order.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// RegionByCode resolves a short code such as "eu".
func RegionByCode(code string) (Region, bool) {
	for _, r := range regions {
		if r.Code == code {
			return r, true
		}
	}
	return Region{}, false
}

// ServerName resolves a server code to its display name. The lookup is scoped
// to regionCode first and falls back to every region; unknown codes are
// returned unchanged.
func ServerName(regionCode, serverCode string) string {
	if r, ok := RegionByCode(regionCode); ok {
		if s, ok := r.Server(serverCode); ok {
			return s.Name
		}
	}
	for _, r := range regions {
		if s, ok := r.Server(serverCode); ok {
			return s.Name
		}
	}
	return serverCode
}
