package id

import "github.com/bwmarrin/snowflake"

// Los ids de todas las entidades son snowflakes en formato string: únicos,
// ordenables por tiempo de creación y seguros para URLs.

var node *snowflake.Node

func init() {
	n, err := snowflake.NewNode(1)
	if err != nil {
		panic("id: inicializar nodo snowflake: " + err.Error())
	}
	node = n
}

// New devuelve un nuevo id snowflake como string decimal.
func New() string {
	return node.Generate().String()
}
