package snowflake

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Ids must stay below 2^53 so browsers can read them as plain numbers.
// 41 bit timestamps would overflow that, so the layout is narrowed to
// 4 node bits and 8 step bits on a 2024 epoch.
func init() {
	snowflake.Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	snowflake.NodeBits = 4
	snowflake.StepBits = 8

	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

func GenID() int64 {
	return node.Generate().Int64()
}
