package pkg

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Order ids carry a time-ordered snowflake so ranged scans and log lines sort
// chronologically. The node id must differ between concurrently running
// ingress replicas (SNOWFLAKE_NODE_ID, default 1).

var (
	nodeOnce sync.Once
	node     *snowflake.Node
)

func orderIDNode() *snowflake.Node {
	nodeOnce.Do(func() {
		nodeID := int64(1)
		if v := os.Getenv("SNOWFLAKE_NODE_ID"); v != "" {
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				log.Fatalf("invalid SNOWFLAKE_NODE_ID %q: %v", v, err)
			}
			nodeID = parsed
		}
		n, err := snowflake.NewNode(nodeID)
		if err != nil {
			log.Fatalf("failed to create snowflake node: %v", err)
		}
		node = n
	})
	return node
}

// NewOrderID returns a fresh time-ordered order id ("ord-<snowflake>").
func NewOrderID() string {
	return "ord-" + orderIDNode().Generate().String()
}
