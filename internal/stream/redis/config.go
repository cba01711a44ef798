package redis

type RedisStreamConfig struct {
	RedisAddr    string
	Password     string
	Stream       string
	OutStream    string
	Group        string
	ConsumerName string
}

func NewRedisStreamConfig(addr, password, stream, outStream, group, consumerName string) *RedisStreamConfig {
	return &RedisStreamConfig{
		RedisAddr:    addr,
		Password:     password,
		Stream:       stream,
		OutStream:    outStream,
		Group:        group,
		ConsumerName: consumerName,
	}
}
