package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator genera identificadores únicos, monotónicos y ordenables para el libro de movimientos.
// Un nodo snowflake por proceso; la unicidad está garantizada por construcción, no por azar.
type Generator struct {
	node *snowflake.Node
}

// New construye el generador con el número de nodo indicado (0-1023).
func New(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("init snowflake node: %w", err)
	}
	return &Generator{node: node}, nil
}

// NextID devuelve el siguiente identificador en representación decimal.
func (g *Generator) NextID() string {
	return g.node.Generate().String()
}
