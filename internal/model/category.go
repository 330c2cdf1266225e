package model

// Category is a spending category assigned by the title classifier.
// The set is open: rule files may introduce new categories without a
// code change, so only the built-in ones are named here.
type Category string

const (
	CategoryGroceries  Category = "GROCERIES"
	CategoryZabka      Category = "ZABKA"
	CategoryPharmacy   Category = "PHARMACY"
	CategoryFuel       Category = "FUEL"
	CategoryParking    Category = "PARKING_TOLLS"
	CategoryTransport  Category = "TRANSPORT_RIDEHAIL"
	CategoryFastFood   Category = "FAST_FOOD"
	CategoryRestaurant Category = "RESTAURANT"
	CategoryCafe       Category = "CAFE"
	CategoryDesserts   Category = "DESSERTS"
	CategoryEntertain  Category = "ENTERTAINMENT"
	CategorySubscribe  Category = "SUBSCRIPTION"
	CategoryHomeGoods  Category = "HOME_GOODS"
	CategoryBeauty     Category = "BEAUTY_PERSONAL_CARE"
	CategoryFlowers    Category = "FLOWERS_GIFTS"
	CategoryGovernment Category = "GOVERNMENT_FEES"
	CategoryFitness    Category = "FITNESS_WELLNESS"
	CategoryOnline     Category = "ONLINE_SERVICES"
	CategoryTransfer   Category = "TRANSFER"
	CategoryUnknown    Category = "UNKNOWN"
)
