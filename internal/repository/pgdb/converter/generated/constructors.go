package generated

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func NewCartConverterImpl() *CartConverterImpl {
	return &CartConverterImpl{}
}

func NewCartItemConverterImpl() *CartItemConverterImpl {
	return &CartItemConverterImpl{}
}

func NewOutboxEventConverterImpl() *OutboxEventConverterImpl {
	return &OutboxEventConverterImpl{}
}
