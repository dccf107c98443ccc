package catalog

// Room is the integer room code used by the catalog service:
// 0=kitchen, 1=bedroom, 2=bathroom.
type Room int

const (
	RoomKitchen Room = iota
	RoomBedroom
	RoomBathroom
)

var roomLabels = map[Room]string{
	RoomKitchen:  "Кухня",
	RoomBedroom:  "Спальня",
	RoomBathroom: "Ванная",
}

var roomKeys = map[Room]string{
	RoomKitchen:  "kitchen",
	RoomBedroom:  "bedroom",
	RoomBathroom: "bathroom",
}

// Label returns the user-facing room name.
func (r Room) Label() string {
	return roomLabels[r]
}

// Key returns the stable payload tag used in callback data.
func (r Room) Key() string {
	return roomKeys[r]
}

// Valid reports whether r is one of the known room codes.
func (r Room) Valid() bool {
	_, ok := roomKeys[r]
	return ok
}

// ParseRoom resolves a callback payload tag back into a Room.
func ParseRoom(key string) (Room, bool) {
	for r, k := range roomKeys {
		if k == key {
			return r, true
		}
	}
	return 0, false
}

// Rooms lists all room categories in display order.
func Rooms() []Room {
	return []Room{RoomKitchen, RoomBedroom, RoomBathroom}
}

// Product is a read-only catalog entry owned by the catalog service.
type Product struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Price       int64  `json:"price" db:"price"`
	Room        Room   `json:"room" db:"room"`
}

// FilterByRoom returns the products whose room category matches.
func FilterByRoom(products []Product, room Room) []Product {
	var out []Product
	for _, p := range products {
		if p.Room == room {
			out = append(out, p)
		}
	}
	return out
}

// FindByID returns the product with the given id from a catalog snapshot.
func FindByID(products []Product, id int64) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
