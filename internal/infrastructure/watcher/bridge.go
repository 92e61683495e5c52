package watcher

// bridge 连接底层通知回调与消费协程的无界 FIFO 队列
// 入队永不阻塞生产者，出队在队列为空时阻塞消费者；
// 不做背压控制，消费过慢时积压会持续增长
type bridge struct {
	in  chan RawNotification
	out chan RawNotification
}

// newBridge 创建桥并启动内部搬运协程
func newBridge() *bridge {
	b := &bridge{
		in:  make(chan RawNotification),
		out: make(chan RawNotification),
	}
	go b.run()
	return b
}

// run 在内部切片中缓冲通知，保证入队端随时可写
// in 关闭后把剩余积压送完，再关闭 out
func (b *bridge) run() {
	var backlog []RawNotification
	in := b.in

	for in != nil || len(backlog) > 0 {
		var out chan RawNotification
		var next RawNotification
		if len(backlog) > 0 {
			out = b.out
			next = backlog[0]
		}

		select {
		case raw, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			backlog = append(backlog, raw)
		case out <- next:
			backlog = backlog[1:]
		}
	}

	close(b.out)
}
