// Package transport serves a draw.Rasterizer over 9P2000, following the
// Plan 9 /dev/draw namespace convention: a data file carries the
// opcode stream and its replies, a ctl file reports the allocation
// record for the display, and a refresh file reports accumulated
// damage rectangles one FormatRefresh record at a time.
package transport

import (
	"fmt"
	"io"
	"log"
	"net"
	"sync"
	"time"

	"9fans.net/go/plan9"

	"github.com/elizafairlady/drawcompositor/draw"
)

// Qid paths for the namespace's three nodes.
const (
	qidRoot = iota
	qidData
	qidCtl
	qidRefresh
)

var (
	rootQid    = plan9.Qid{Path: qidRoot, Vers: 0, Type: plan9.QTDIR}
	dataQid    = plan9.Qid{Path: qidData, Vers: 0, Type: plan9.QTFILE}
	ctlQid     = plan9.Qid{Path: qidCtl, Vers: 0, Type: plan9.QTFILE}
	refreshQid = plan9.Qid{Path: qidRefresh, Vers: 0, Type: plan9.QTFILE}
)

func now() uint32 { return uint32(time.Now().Unix()) }

// Server owns the compositor state shared by every attached connection.
// A real devdraw exports one such namespace per client; this transport
// keeps a single shared Rasterizer, matching the single-threaded
// cooperative model the compositor itself assumes.
type Server struct {
	mu      sync.Mutex
	rz      *draw.Rasterizer
	rect    draw.Rectangle
	pending []draw.Rectangle
}

// NewServer creates a transport around a freshly allocated display of
// the given extent.
func NewServer(width, height int) *Server {
	return &Server{
		rz:   draw.NewRasterizer(width, height),
		rect: draw.Rect(0, 0, width, height),
	}
}

// Serve accepts connections on ln until it returns an error (typically
// when ln is closed).
func (s *Server) Serve(ln net.Listener) error {
	for {
		nc, err := ln.Accept()
		if err != nil {
			return err
		}
		go s.serveConn(nc)
	}
}

func rootDir() *plan9.Dir {
	return &plan9.Dir{
		Qid: rootQid, Mode: plan9.Perm(plan9.DMDIR | 0555),
		Atime: now(), Mtime: now(), Name: "/", Uid: "none", Gid: "none", Muid: "none",
	}
}

func dataDir() *plan9.Dir {
	return &plan9.Dir{
		Qid: dataQid, Mode: 0666, Atime: now(), Mtime: now(),
		Name: "data", Uid: "none", Gid: "none", Muid: "none",
	}
}

func ctlDir(length int) *plan9.Dir {
	return &plan9.Dir{
		Qid: ctlQid, Mode: 0444, Atime: now(), Mtime: now(),
		Length: uint64(length), Name: "ctl", Uid: "none", Gid: "none", Muid: "none",
	}
}

func refreshDir() *plan9.Dir {
	return &plan9.Dir{
		Qid: refreshQid, Mode: 0444, Atime: now(), Mtime: now(),
		Name: "refresh", Uid: "none", Gid: "none", Muid: "none",
	}
}

// fidState is the per-fid walk position plus any buffered read content
// produced by the fid's last write (the data file's replies) or
// filled at open time (ctl). Refresh reads take records from the
// Server's pending list instead.
type fidState struct {
	qid    plan9.Qid
	unread []byte
}

// conn handles one 9P connection against the shared Server.
type conn struct {
	srv   *Server
	rwc   io.ReadWriteCloser
	msize uint32

	mu   sync.Mutex
	fids map[uint32]*fidState
}

func (s *Server) serveConn(rwc io.ReadWriteCloser) {
	c := &conn{srv: s, rwc: rwc, fids: make(map[uint32]*fidState)}
	defer c.rwc.Close()
	for {
		tx, err := plan9.ReadFcall(c.rwc)
		if err != nil {
			if err != io.EOF {
				log.Printf("transport: read fcall: %v", err)
			}
			return
		}
		rx := c.handle(tx)
		rx.Tag = tx.Tag
		if err := plan9.WriteFcall(c.rwc, rx); err != nil {
			log.Printf("transport: write fcall: %v", err)
			return
		}
	}
}

func (c *conn) getFid(fid uint32) *fidState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fids[fid]
}

func (c *conn) setFid(fid uint32, f *fidState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fids[fid] = f
}

func (c *conn) delFid(fid uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.fids, fid)
}

func rerror(msg string) *plan9.Fcall { return &plan9.Fcall{Type: plan9.Rerror, Ename: msg} }

func (c *conn) handle(tx *plan9.Fcall) *plan9.Fcall {
	switch tx.Type {
	case plan9.Tversion:
		return c.tversion(tx)
	case plan9.Tauth:
		return rerror("authentication not required")
	case plan9.Tattach:
		return c.tattach(tx)
	case plan9.Tflush:
		return &plan9.Fcall{Type: plan9.Rflush}
	case plan9.Twalk:
		return c.twalk(tx)
	case plan9.Topen:
		return c.topen(tx)
	case plan9.Tcreate:
		return rerror("create prohibited")
	case plan9.Tread:
		return c.tread(tx)
	case plan9.Twrite:
		return c.twrite(tx)
	case plan9.Tclunk:
		return c.tclunk(tx)
	case plan9.Tremove:
		return rerror("remove prohibited")
	case plan9.Tstat:
		return c.tstat(tx)
	case plan9.Twstat:
		return rerror("wstat prohibited")
	default:
		return rerror(fmt.Sprintf("unknown message type %d", tx.Type))
	}
}

func (c *conn) tversion(tx *plan9.Fcall) *plan9.Fcall {
	c.msize = tx.Msize
	if c.msize > 65536 {
		c.msize = 65536
	}
	return &plan9.Fcall{Type: plan9.Rversion, Msize: c.msize, Version: plan9.VERSION9P}
}

func (c *conn) tattach(tx *plan9.Fcall) *plan9.Fcall {
	c.setFid(tx.Fid, &fidState{qid: rootQid})
	return &plan9.Fcall{Type: plan9.Rattach, Qid: rootQid}
}

func (c *conn) twalk(tx *plan9.Fcall) *plan9.Fcall {
	f := c.getFid(tx.Fid)
	if f == nil {
		return rerror("unknown fid")
	}
	cur := f.qid
	wqid := make([]plan9.Qid, 0, len(tx.Wname))
	for _, name := range tx.Wname {
		if cur.Type&plan9.QTDIR == 0 {
			break
		}
		switch {
		case cur.Path == qidRoot && name == "data":
			cur = dataQid
		case cur.Path == qidRoot && name == "ctl":
			cur = ctlQid
		case cur.Path == qidRoot && name == "refresh":
			cur = refreshQid
		case name == "..":
			cur = rootQid
		default:
			if len(wqid) == 0 {
				return rerror("file not found")
			}
			goto done
		}
		wqid = append(wqid, cur)
	}
done:
	if len(wqid) == len(tx.Wname) {
		c.setFid(tx.Newfid, &fidState{qid: cur})
	}
	return &plan9.Fcall{Type: plan9.Rwalk, Wqid: wqid}
}

func (c *conn) topen(tx *plan9.Fcall) *plan9.Fcall {
	f := c.getFid(tx.Fid)
	if f == nil {
		return rerror("unknown fid")
	}
	if f.qid.Path == qidCtl {
		s, err := c.srv.rz.Store().FormatCtl(1, 0)
		if err != nil {
			return rerror(err.Error())
		}
		f.unread = []byte(s)
	}
	return &plan9.Fcall{Type: plan9.Ropen, Qid: f.qid, Iounit: c.msize - plan9.IOHDRSIZE}
}

func (c *conn) tread(tx *plan9.Fcall) *plan9.Fcall {
	f := c.getFid(tx.Fid)
	if f == nil {
		return rerror("unknown fid")
	}

	var data []byte
	switch f.qid.Path {
	case qidRoot:
		if tx.Offset != 0 {
			data = nil
			break
		}
		var all []byte
		all = append(all, dirBytes(dataDir())...)
		all = append(all, dirBytes(ctlDir(144))...)
		all = append(all, dirBytes(refreshDir())...)
		data = all
	case qidData:
		// The data file yields the bytes produced by the most recent
		// write's Process call; reads past that are empty until the
		// next write refills f.unread.
		data = f.unread
		f.unread = nil
	case qidCtl:
		data = f.unread
	case qidRefresh:
		c.srv.mu.Lock()
		var r draw.Rectangle
		if len(c.srv.pending) > 0 {
			r = c.srv.pending[0]
			c.srv.pending = c.srv.pending[1:]
		}
		c.srv.mu.Unlock()
		data = draw.FormatRefresh(r)
	default:
		return rerror("unknown qid")
	}
	if uint32(len(data)) > tx.Count {
		data = data[:tx.Count]
	}
	return &plan9.Fcall{Type: plan9.Rread, Data: data}
}

func (c *conn) twrite(tx *plan9.Fcall) *plan9.Fcall {
	f := c.getFid(tx.Fid)
	if f == nil {
		return rerror("unknown fid")
	}
	if f.qid.Path != qidData {
		return rerror("write not permitted on this file")
	}
	c.srv.mu.Lock()
	resp, flushed, err := c.srv.rz.Process(tx.Data)
	if err == nil {
		c.srv.pending = append(c.srv.pending, flushed...)
	}
	c.srv.mu.Unlock()
	if err != nil {
		return rerror(err.Error())
	}
	f.unread = resp
	return &plan9.Fcall{Type: plan9.Rwrite, Count: uint32(len(tx.Data))}
}

func (c *conn) tclunk(tx *plan9.Fcall) *plan9.Fcall {
	c.delFid(tx.Fid)
	return &plan9.Fcall{Type: plan9.Rclunk}
}

func (c *conn) tstat(tx *plan9.Fcall) *plan9.Fcall {
	f := c.getFid(tx.Fid)
	if f == nil {
		return rerror("unknown fid")
	}
	var d *plan9.Dir
	switch f.qid.Path {
	case qidRoot:
		d = rootDir()
	case qidData:
		d = dataDir()
	case qidCtl:
		d = ctlDir(144)
	case qidRefresh:
		d = refreshDir()
	default:
		return rerror("unknown qid")
	}
	return &plan9.Fcall{Type: plan9.Rstat, Stat: dirBytes(d)}
}

func dirBytes(d *plan9.Dir) []byte {
	b, _ := d.Bytes()
	return b
}
