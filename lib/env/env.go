package env

import (
	"os"
	"strconv"
)

func Test() bool {
	return os.Getenv("TEST_MODE") != ""
}

func Dev() bool {
	return os.Getenv("DEV_MODE") != ""
}

func Debug() bool {
	return os.Getenv("DEBUG") != ""
}

// MaxTreeDepth overrides the default recursion ceiling of the tree
// builder, for stress runs against pathological inputs.
func MaxTreeDepth() (int, bool) {
	if s := os.Getenv("SMARTART_MAX_TREE_DEPTH"); s != "" {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return int(i), true
		}
	}
	return -1, false
}
