package store

// TestIndexKey holds the set of every known test id.
const TestIndexKey = "test:ids"

func TestKey(testID string) string {
	return "test:" + testID
}

func ResultIndexKey(testID string) string {
	return "test:" + testID + ":results"
}

func ResultKey(testID, resultID string) string {
	return "test:" + testID + ":result:" + resultID
}
