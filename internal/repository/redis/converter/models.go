package converter

// ProductInfoRedisModel — JSON-представление товара в кэше Redis.
type ProductInfoRedisModel struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	Category             string `json:"category"`
	Size                 string `json:"size"`
	Color                string `json:"color"`
	PriceFiftyUnits      int64  `json:"price_fifty_units"`
	PriceOneHundredUnits int64  `json:"price_one_hundred_units"`
	PriceTwoHundredUnits int64  `json:"price_two_hundred_units"`
	Stock                int32  `json:"stock"`
}
